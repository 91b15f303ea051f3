// Package stormsql translates SQL SELECT statements into Storm queries, so a
// bbolt-backed database can be inspected with familiar syntax.
package stormsql

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/asdine/storm/v3/q"
	"github.com/pkg/errors"
	"github.com/xwb1989/sqlparser"
)

// A SelectQuery contains all the parsed SELECT data.
type SelectQuery struct {
	Fields   []string
	Count    bool
	Table    string
	Matcher  q.Matcher
	Skip     int
	Limit    int
	OrderBy  []string
	Reversed bool
}

// ParseSelect parses the given SELECT statement.
func ParseSelect(sql string) (*SelectQuery, error) {
	stmt, err := sqlparser.Parse(sql)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse SQL")
	}

	s, ok := stmt.(*sqlparser.Select)
	if !ok {
		return nil, errors.New("not a select statement")
	}

	var sq SelectQuery

	// SELECT * ...
	// SELECT Tagging,UpdatedAt ...
	// SELECT count(*) ...
	for _, se := range s.SelectExprs {
		switch v := se.(type) {
		case *sqlparser.StarExpr:
			sq.Fields = []string{}
		case *sqlparser.AliasedExpr:
			switch v := v.Expr.(type) {
			case *sqlparser.ColName:
				sq.Fields = append(sq.Fields, v.Name.String())
			case *sqlparser.FuncExpr:
				sq.Fields = []string{}
				sq.Count = v.Name.String() == "count"
			default:
				return nil, errors.Errorf("unsupported select expression: %T", v)
			}
		default:
			return nil, errors.Errorf("unsupported select expression: %T", v)
		}
	}

	// FROM items
	sq.Table = sqlparser.GetTableName(s.From[0].(*sqlparser.AliasedTableExpr).Expr).String()

	// WHERE Tagging LIKE 'Box%' AND UpdatedAt > '2024-06-01'
	sq.Matcher = q.And()
	if s.Where != nil {
		sq.Matcher, err = matcher(s.Where.Expr)
		if err != nil {
			return nil, err
		}
	}

	// LIMIT 5
	// LIMIT 2,5
	if s.Limit != nil {
		if s.Limit.Offset != nil {
			skip, err := value(s.Limit.Offset.(*sqlparser.SQLVal))
			if err != nil {
				return nil, err
			}
			sq.Skip, _ = skip.(int)
		}

		limit, err := value(s.Limit.Rowcount.(*sqlparser.SQLVal))
		if err != nil {
			return nil, err
		}
		sq.Limit, _ = limit.(int)
	}

	// ORDER BY UpdatedAt
	// ORDER BY UpdatedAt DESC, CreatedAt ASC    => all DESC, storm limitation
	for _, ob := range s.OrderBy {
		if ob.Direction == "desc" {
			sq.Reversed = true
		}

		col, ok := ob.Expr.(*sqlparser.ColName)
		if !ok {
			return nil, errors.Errorf("unsupported order by expression: %T", ob.Expr)
		}
		sq.OrderBy = append(sq.OrderBy, col.Name.String())
	}

	return &sq, nil
}

func matcher(expr sqlparser.Expr) (q.Matcher, error) {
	switch v := expr.(type) {
	case *sqlparser.ComparisonExpr:
		field := v.Left.(*sqlparser.ColName).Name.String()

		var comparison any
		switch sqlvalue := v.Right.(type) {
		case sqlparser.BoolVal:
			comparison = sqlvalue
		case sqlparser.ValTuple:
			var tuple []any
			for _, t := range sqlvalue {
				parsed, err := value(t.(*sqlparser.SQLVal))
				if err != nil {
					return nil, err
				}
				tuple = append(tuple, parsed)
			}
			comparison = tuple
		case *sqlparser.SQLVal:
			parsed, err := value(sqlvalue)
			if err != nil {
				return nil, err
			}
			comparison = parsed
		default:
			return nil, errors.Errorf("unsupported value: %T", v.Right)
		}

		switch v.Operator {
		case "=":
			return q.Eq(field, comparison), nil
		case "!=":
			return q.Not(q.Eq(field, comparison)), nil
		case ">":
			return q.Gt(field, comparison), nil
		case ">=":
			return q.Gte(field, comparison), nil
		case "<":
			return q.Lt(field, comparison), nil
		case "<=":
			return q.Lte(field, comparison), nil
		case "in":
			return q.In(field, comparison), nil
		case "like":
			s, ok := comparison.(string)
			if !ok {
				return nil, errors.Errorf("like wants a string pattern, got %T", comparison)
			}
			return q.Re(field, likeRegexp(s)), nil
		default:
			return nil, errors.Errorf("unsupported operator: %s", v.Operator)
		}

	case *sqlparser.IsExpr:
		if v.Operator != "is not null" {
			return nil, errors.Errorf("unsupported is expression: %s", v.Operator)
		}
		return q.Not(q.Eq(v.Expr.(*sqlparser.ColName).Name.String(), nil)), nil

	case *sqlparser.AndExpr:
		left, err := matcher(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := matcher(v.Right)
		if err != nil {
			return nil, err
		}
		return q.And(left, right), nil

	case *sqlparser.OrExpr:
		left, err := matcher(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := matcher(v.Right)
		if err != nil {
			return nil, err
		}
		return q.Or(left, right), nil

	case *sqlparser.ParenExpr:
		return matcher(v.Expr)
	}

	return nil, errors.Errorf("unsupported where expression: %T", expr)
}

func value(v *sqlparser.SQLVal) (any, error) {
	switch v.Type {
	case sqlparser.StrVal:
		// Try to convert to time.Time if possible.
		if t, err := dateparse.ParseAny(string(v.Val)); err == nil {
			return t.UTC(), nil
		}
		return string(v.Val), nil
	case sqlparser.IntVal:
		n, err := strconv.Atoi(string(v.Val))
		return n, errors.Wrap(err, "could not parse integer")
	case sqlparser.FloatVal:
		f, err := strconv.ParseFloat(string(v.Val), 64)
		return f, errors.Wrap(err, "could not parse float")
	case sqlparser.HexNum:
		n, err := strconv.ParseInt(string(v.Val), 16, 64)
		return n, errors.Wrap(err, "could not parse hexadecimal")
	case sqlparser.BitVal:
		return v.Val[0] == 1, nil
	}

	return nil, errors.Errorf("unsupported value type: %d", v.Type)
}

// likeRegexp converts a SQL LIKE pattern to an anchored regular expression:
// % matches any run of characters, _ a single one, the rest is literal.
func likeRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString("(?i)^")

	for _, r := range pattern {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}

	b.WriteString("$")
	return b.String()
}
