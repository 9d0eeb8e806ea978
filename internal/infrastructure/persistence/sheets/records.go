package sheets

import "fmt"

// Record is one row of a worksheet keyed by its header row.
type Record map[string]string

// Get returns the named field or "" when the column is absent.
func (r Record) Get(key string) string {
	return r[key]
}

// rowsToRecords maps raw cell values onto the header row (the first row).
// Short rows are padded with empty fields, extra cells beyond the header
// are ignored.
func rowsToRecords(values [][]interface{}) []Record {
	if len(values) == 0 {
		return nil
	}

	headers := make([]string, len(values[0]))
	for i, cell := range values[0] {
		headers[i] = fmt.Sprint(cell)
	}

	records := make([]Record, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = fmt.Sprint(row[i])
			} else {
				record[header] = ""
			}
		}
		records = append(records, record)
	}

	return records
}
