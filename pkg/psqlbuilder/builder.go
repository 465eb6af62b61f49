package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder настроен на синтаксис Postgres ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT builder с плейсхолдерами Postgres
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT builder с плейсхолдерами Postgres
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update возвращает UPDATE builder с плейсхолдерами Postgres
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE builder с плейсхолдерами Postgres
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
