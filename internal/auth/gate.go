// Package auth enforces the role policy on interpreted report requests.
// The interpreter itself is role-agnostic; this gate sits between it and
// the report generator.
package auth

import (
	"fmt"

	"github.com/nmoralesv/informe/internal/common"
	"github.com/nmoralesv/informe/internal/model"
)

// Apply applies role restrictions to an interpretation. Admins pass through
// untouched. Clients only ever see their own data: my_purchases and general
// pass, financial is read as "my purchases, financial angle", and every
// other type is downgraded to general. The client filter is stripped for
// non-admins since it names other people's data. Unknown roles are rejected.
func Apply(role model.Role, in model.Interpretation) (model.Interpretation, error) {
	switch role {
	case model.RoleAdmin:
		return in, nil

	case model.RoleClient:
		switch in.ReportType {
		case model.ReportTypeMyPurchases, model.ReportTypeGeneral:
			// Already within what the caller may see.
		case model.ReportTypeFinancial:
			in.ReportType = model.ReportTypeMyPurchases
			in.Context.FinancialAngle = true
		default:
			in.ReportType = model.ReportTypeGeneral
		}
		in.Filters.Client = ""
		return in, nil

	default:
		return model.Interpretation{}, fmt.Errorf("%w: %q", common.ErrUnknownRole, role)
	}
}
