package utils

import (
	"fmt"
	"time"
)

// MonthLayout é o formato de período usado nas tabelas mensais (mm-yyyy)
const MonthLayout = "01-2006"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth valida um período no formato mm-yyyy
func ParseMonth(month string) (time.Time, error) {
	date, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q, use o formato mm-yyyy", month)
	}

	return date, nil
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// StartOfDay normaliza a data para meia-noite
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// NextDay retorna a meia-noite do dia seguinte, limite exclusivo de um intervalo diário
func NextDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1)
}
