package entity

// TableInfo describes one database table.
type TableInfo struct {
	Name    string
	Columns []ColumnInfo
}

// ColumnInfo describes one column as reported by the driver.
type ColumnInfo struct {
	Name     string
	Type     string
	Nullable bool
}
