package sqlfault

// NoReferencedTableError reports a foreign key whose referenced table cannot
// be located.
type NoReferencedTableError struct {
	msg       string
	TableName string
}

func NewNoReferencedTable(msg, table string) *NoReferencedTableError {
	return &NoReferencedTableError{msg: msg, TableName: table}
}

func (e *NoReferencedTableError) Error() string { return e.msg }
func (e *NoReferencedTableError) Class() *Class { return NoReferencedTable }
func (e *NoReferencedTableError) Is(target error) bool {
	return classIs(NoReferencedTable, target)
}

// NoReferencedColumnError reports a foreign key whose referenced column
// cannot be located in an otherwise present table.
type NoReferencedColumnError struct {
	msg        string
	TableName  string
	ColumnName string
}

func NewNoReferencedColumn(msg, table, column string) *NoReferencedColumnError {
	return &NoReferencedColumnError{msg: msg, TableName: table, ColumnName: column}
}

func (e *NoReferencedColumnError) Error() string { return e.msg }
func (e *NoReferencedColumnError) Class() *Class { return NoReferencedColumn }
func (e *NoReferencedColumnError) Is(target error) bool {
	return classIs(NoReferencedColumn, target)
}
