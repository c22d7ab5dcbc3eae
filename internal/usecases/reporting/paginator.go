package reporting

import "github.com/vfg2006/marketing-dashboard-api/internal/domain"

// PageWindow é a fatia de uma página já com os parâmetros ajustados
type PageWindow struct {
	Rows       []domain.MetricRow
	Page       int
	PageSize   int
	TotalPages int
}

// Paginate recorta a página pedida. page mínimo 1, pageSize limitado a maxPageSize.
// pageSize menor que 1 também é ajustado para 1: aceitar zero ou negativo produzia
// páginas vazias ou a lista inteira, dependendo de como o slice era feito.
// Página depois do fim devolve uma fatia vazia.
func Paginate(rows []domain.MetricRow, page, pageSize, maxPageSize int) PageWindow {
	page = max(page, 1)
	if maxPageSize > 0 {
		pageSize = min(pageSize, maxPageSize)
	}
	pageSize = max(pageSize, 1)

	total := len(rows)
	totalPages := (total + pageSize - 1) / pageSize

	window := PageWindow{
		Rows:       []domain.MetricRow{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}

	if page > totalPages {
		return window
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	window.Rows = rows[start:end]

	return window
}
