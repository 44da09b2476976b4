package prediction

import (
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/leafcare-backend/internal/domain"
)

// likeEscaper escapes LIKE metacharacters. PostgreSQL's default escape
// character is the backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// filterConditions builds the WHERE clause for a user's filtered history.
// Fields combine with AND; the search fields combine with OR.
//
// user_id is bound through squirrel.Expr: squirrel.Eq expands array values
// such as uuid.UUID into IN lists.
func filterConditions(userID uuid.UUID, f domain.HistoryFilter) squirrel.And {
	conds := squirrel.And{squirrel.Expr("p.user_id = ?", userID)}

	if f.Disease != nil {
		conds = append(conds, squirrel.Eq{"p.disease": *f.Disease})
	}
	if f.PlantType != nil {
		conds = append(conds, squirrel.Eq{"p.plant_type": *f.PlantType})
	}
	if f.Search != nil && *f.Search != "" {
		pattern := containsPattern(*f.Search)
		conds = append(conds, squirrel.Or{
			squirrel.ILike{"p.disease": pattern},
			squirrel.ILike{"p.plant_type": pattern},
			squirrel.ILike{"p.plant_name": pattern},
		})
	}
	if f.DateFrom != nil {
		conds = append(conds, squirrel.GtOrEq{"p.created_at": *f.DateFrom})
	}
	if f.DateTo != nil {
		conds = append(conds, squirrel.LtOrEq{"p.created_at": *f.DateTo})
	}

	return conds
}
