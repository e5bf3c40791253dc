package postgres

import sq "github.com/Masterminds/squirrel"

// Psql builds PostgreSQL statements with $n placeholders. Sub-selects embedded
// into a Psql statement must keep the default ? placeholders; the outer
// statement renumbers them.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
