package dataset

import "fmt"

// Dataset is a header row plus data rows.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// New builds a Dataset from raw records, treating the first record as the
// header. Ragged records are padded with empty cells.
func New(records [][]string) *Dataset {
	ds := &Dataset{}
	if len(records) == 0 {
		return ds
	}
	ds.Header = records[0]
	ds.Rows = records[1:]
	ds.pad()
	return ds
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Width returns the number of columns.
func (d *Dataset) Width() int {
	return len(d.Header)
}

// Validate returns ErrEmptyDataset when there is nothing to convert.
func (d *Dataset) Validate() error {
	if d.Width() == 0 || d.Len() == 0 {
		return ErrEmptyDataset
	}
	return nil
}

// Column returns the values of the named column. When name is empty or not
// in the header, the first column is used and fellBack is true. used is the
// header name of the column actually returned.
func (d *Dataset) Column(name string) (values []string, used string, fellBack bool, err error) {
	if err := d.Validate(); err != nil {
		return nil, "", false, err
	}

	idx := d.index(name)
	if idx < 0 {
		idx = 0
		fellBack = true
	}

	values = make([]string, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[idx]
	}
	return values, d.Header[idx], fellBack, nil
}

// AppendColumns adds columns after the existing ones. Each column must hold
// exactly one value per data row.
func (d *Dataset) AppendColumns(names []string, cols [][]string) error {
	if len(names) != len(cols) {
		return fmt.Errorf("%w: %d names for %d columns", ErrColumnLength, len(names), len(cols))
	}
	for i, col := range cols {
		if len(col) != len(d.Rows) {
			return fmt.Errorf("%w: column %q has %d values, want %d",
				ErrColumnLength, names[i], len(col), len(d.Rows))
		}
	}

	d.Header = append(d.Header, names...)
	for r := range d.Rows {
		for _, col := range cols {
			d.Rows[r] = append(d.Rows[r], col[r])
		}
	}
	return nil
}

// Records returns the header followed by the data rows.
func (d *Dataset) Records() [][]string {
	records := make([][]string, 0, len(d.Rows)+1)
	records = append(records, d.Header)
	return append(records, d.Rows...)
}

func (d *Dataset) index(name string) int {
	if name == "" {
		return -1
	}
	for i, h := range d.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// pad widens the header and every row to the widest record.
func (d *Dataset) pad() {
	width := len(d.Header)
	for _, row := range d.Rows {
		width = max(width, len(row))
	}
	d.Header = padRow(d.Header, width)
	for i, row := range d.Rows {
		d.Rows[i] = padRow(row, width)
	}
}

func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
