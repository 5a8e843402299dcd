package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

type currency struct {
	Name   string
	Symbol string
	Num    string
	Den    string
}

// Ident returns the name of the Go variable holding the currency.
func (c currency) Ident() string {
	if c.Symbol != "" {
		return c.Symbol
	}
	return c.Num + c.Den
}

type currencies struct {
	Atoms  []currency
	Ratios []currency
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 4
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) (currencies, error) {
	var currs currencies
	atoms := map[string]bool{}
	for _, rec := range data {
		curr := currency{
			Name:   rec[0],
			Symbol: rec[1],
			Num:    rec[2],
			Den:    rec[3],
		}
		switch {
		case curr.Symbol != "" && curr.Num == "" && curr.Den == "":
			atoms[curr.Symbol] = true
			currs.Atoms = append(currs.Atoms, curr)
		case curr.Symbol == "" && curr.Num != "" && curr.Den != "":
			currs.Ratios = append(currs.Ratios, curr)
		default:
			return currencies{}, fmt.Errorf("record %q: either symbol or numerator and denominator must be set", rec)
		}
	}

	// Ratios may only refer to atomic currencies defined in the same file
	for _, r := range currs.Ratios {
		if !atoms[r.Num] || !atoms[r.Den] {
			return currencies{}, fmt.Errorf("ratio %v/%v refers to an undefined currency", r.Num, r.Den)
		}
	}

	// Sort by Go identifier
	sort.Slice(currs.Atoms, func(i, j int) bool { return currs.Atoms[i].Ident() < currs.Atoms[j].Ident() })
	sort.Slice(currs.Ratios, func(i, j int) bool { return currs.Ratios[i].Ident() < currs.Ratios[j].Ident() })
	return currs, nil
}

func generateGoCode(filename string, currs currencies) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
