// Package csvfile lê as fontes em arquivo delimitado: credenciais e métricas.
package csvfile

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const (
	utf8BOM = "\ufeff"

	// Frequência da checagem de cancelamento durante a leitura
	ctxCheckInterval = 10000
)

// record dá acesso às colunas de uma linha pelo nome do cabeçalho
type record struct {
	index  map[string]int
	values []string
}

func (r record) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// readRecords abre o arquivo e chama fn para cada linha após o cabeçalho.
// Linhas malformadas são repassadas a onBadLine, quando informado, e ignoradas.
func readRecords(ctx context.Context, path string, fn func(record) error, onBadLine func(error)) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "csvfile: arquivo %s não encontrado", path)
		}
		return errors.Wrapf(err, "csvfile: erro ao abrir %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "csvfile: erro ao ler cabeçalho de %s", path)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	lines := 0
	for {
		values, err := reader.Read()
		if err == io.EOF {
			return nil
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			if onBadLine != nil {
				onBadLine(err)
			}
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "csvfile: erro ao ler %s", path)
		}

		lines++
		if lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := fn(record{index: index, values: values}); err != nil {
			return err
		}
	}
}
