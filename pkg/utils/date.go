package utils

import "time"

const DateLayout = time.DateOnly

// ParseDate converte uma data YYYY-MM-DD. String vazia retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
