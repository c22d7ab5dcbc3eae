package reporting

import (
	"context"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_source.go -package=mocks

// Source entrega as linhas cruas de métricas, uma por vez.
// filters é só informativo: as fontes entregam todas as linhas e o loader aplica o filtro,
// contando datas inválidas da mesma forma em qualquer fonte.
type Source interface {
	Stream(ctx context.Context, filters *domain.MetricFilters, fn func(domain.RawMetricRow) error) error
	Info(ctx context.Context) domain.SourceInfo
}

// Reporter é o caso de uso consumido pela API
type Reporter interface {
	// GetPage carrega, ordena, pagina e formata as métricas para o papel do usuário
	GetPage(ctx context.Context, query *domain.PageQuery, role domain.Role) (*domain.Page, error)

	// GetStats nunca falha: erros internos voltam como resumo zerado com o campo error
	GetStats(ctx context.Context, filters *domain.MetricFilters) *domain.StatsSummary

	Columns(role domain.Role) []domain.Column
	Health(ctx context.Context) *domain.Health

	RefreshCache(ctx context.Context) (bool, error)
	CacheStatus() domain.CacheStatus
}
