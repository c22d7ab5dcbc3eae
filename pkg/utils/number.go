package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// BytesToMegabytes converte bytes para MB com duas casas decimais
func BytesToMegabytes(size int64) float64 {
	return RoundWithTwoDecimalPlace(float64(size) / (1024 * 1024))
}
