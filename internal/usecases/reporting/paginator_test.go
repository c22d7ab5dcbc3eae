package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func makeRows(n int) []domain.MetricRow {
	rows := make([]domain.MetricRow, n)
	for i := range rows {
		rows[i].AccountID = fmt.Sprint(i)
	}
	return rows
}

func TestPaginate_ItemCountProperty(t *testing.T) {
	for _, total := range []int{0, 1, 7, 25, 26} {
		rows := makeRows(total)
		for pageSize := 1; pageSize <= 10; pageSize++ {
			for page := 1; page <= 10; page++ {
				window := Paginate(rows, page, pageSize, 1000)

				want := min(pageSize, max(0, total-(page-1)*pageSize))
				assert.Len(t, window.Rows, want, "total=%d page=%d size=%d", total, page, pageSize)
				assert.Equal(t, (total+pageSize-1)/pageSize, window.TotalPages)
			}
		}
	}
}

func TestPaginate_Clamps(t *testing.T) {
	rows := makeRows(30)

	window := Paginate(rows, 0, 10, 1000)
	assert.Equal(t, 1, window.Page)
	assert.Equal(t, "0", window.Rows[0].AccountID)

	window = Paginate(rows, -5, 10, 1000)
	assert.Equal(t, 1, window.Page)

	window = Paginate(rows, 1, 5000, 20)
	assert.Equal(t, 20, window.PageSize)
	assert.Len(t, window.Rows, 20)
	assert.Equal(t, 2, window.TotalPages)

	window = Paginate(rows, 1, 0, 1000)
	assert.Equal(t, 1, window.PageSize)
	assert.Len(t, window.Rows, 1)
	assert.Equal(t, 30, window.TotalPages)

	window = Paginate(rows, 2, -3, 1000)
	assert.Equal(t, 1, window.PageSize)
	assert.Equal(t, "1", window.Rows[0].AccountID)
}

func TestPaginate_BeyondEnd(t *testing.T) {
	window := Paginate(makeRows(3), 99, 2, 1000)

	assert.NotNil(t, window.Rows)
	assert.Empty(t, window.Rows)
	assert.Equal(t, 2, window.TotalPages)
	assert.Equal(t, 99, window.Page)
}
