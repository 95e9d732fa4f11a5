package models

// ClassificationColumn is the header name of the column a classification
// pass appends to a dataset.
const ClassificationColumn = "classification"

// Dataset holds one parsed delimited table: the header row plus all data
// rows in upload order. Every row has exactly len(Header) fields.
type Dataset struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// ColumnIndex returns the position of the named column, or -1 if the header
// does not contain it.
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the header contains the named column.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// RowCount returns the number of data rows (the header excluded).
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// Column returns all values of the named column in row order.
func (d *Dataset) Column(name string) []string {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values
}
