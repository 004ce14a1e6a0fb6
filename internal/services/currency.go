package services

import (
	"fmt"
	"math"
	"strings"
)

// RateProvider returns how many units of a currency buy one US dollar.
type RateProvider interface {
	Rate(code string) (float64, error)
}

// StaticRates is a RateProvider backed by a fixed table.
type StaticRates map[string]float64

// NewStaticRates copies rates, upper-casing the currency codes.
func NewStaticRates(rates map[string]float64) StaticRates {
	table := make(StaticRates, len(rates))
	for code, rate := range rates {
		table[strings.ToUpper(code)] = rate
	}
	return table
}

func (r StaticRates) Rate(code string) (float64, error) {
	rate, ok := r[strings.ToUpper(code)]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}
	return rate, nil
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// Convert converts amount from one currency to another through the dollar
// rate of each, rounded to two decimals.
func Convert(rates RateProvider, amount float64, from, to string) (float64, error) {
	if strings.EqualFold(from, to) {
		return roundMoney(amount), nil
	}
	fromRate, err := rates.Rate(from)
	if err != nil {
		return 0, err
	}
	toRate, err := rates.Rate(to)
	if err != nil {
		return 0, err
	}
	return roundMoney(amount / fromRate * toRate), nil
}

// ConvertMany converts amount into every target currency.
func ConvertMany(rates RateProvider, amount float64, from string, targets []string) (map[string]float64, error) {
	converted := make(map[string]float64, len(targets))
	for _, code := range targets {
		v, err := Convert(rates, amount, from, code)
		if err != nil {
			return nil, err
		}
		converted[code] = v
	}
	return converted, nil
}
