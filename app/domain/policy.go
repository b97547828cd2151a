package domain

import (
	"github.com/google/uuid"
)

// Portal identifies which front end a request gate protects
type Portal string

const (
	PortalAdmin  Portal = "admin"
	PortalClient Portal = "client"
)

// Valid reports whether the portal is one of the known portal types.
func (p Portal) Valid() bool {
	return p == PortalAdmin || p == PortalClient
}

// AllowListPrefixes returns the path prefixes exempted from the gate's
// session check for this portal. Any path under one of these prefixes is
// never authenticated by the gate; authentication there, if any, is each
// handler's own responsibility.
func (p Portal) AllowListPrefixes() []string {
	switch p {
	case PortalAdmin:
		return []string{"/auth/", "/api/"}
	case PortalClient:
		return []string{"/auth/", "/api/auth/"}
	}
	return nil
}

// PolicyDecision is the outcome of the role policy
type PolicyDecision int

const (
	PolicyAllow PolicyDecision = iota
	PolicyDeny
)

// Decide is the role policy: a pure, total function over
// (portal, role, company binding).
//
//	admin portal:  allow iff role is admin or se
//	client portal: allow iff role is client and a company is bound
//
// Every other combination, including unknown roles and unknown portals,
// is denied.
func Decide(portal Portal, role UserRole, companyID *uuid.UUID) PolicyDecision {
	switch portal {
	case PortalAdmin:
		if role == UserRoleAdmin || role == UserRoleSE {
			return PolicyAllow
		}
	case PortalClient:
		if role == UserRoleClient && companyID != nil {
			return PolicyAllow
		}
	}
	return PolicyDeny
}

// GateDecision is the outcome of a full request gate evaluation
type GateDecision int

const (
	// GatePass forwards the request unchanged.
	GatePass GateDecision = iota
	// GateRedirectLogin redirects to the portal's login path. The original
	// path is discarded, not preserved as a return-to parameter.
	GateRedirectLogin
	// GateRedirectUnauthorized redirects to the portal's unauthorized path.
	GateRedirectUnauthorized
)

// Redirect target paths, identical for both portals.
const (
	LoginPath        = "/auth/login"
	UnauthorizedPath = "/auth/unauthorized"
)

func (d GateDecision) String() string {
	switch d {
	case GatePass:
		return "pass"
	case GateRedirectLogin:
		return "redirect_login"
	case GateRedirectUnauthorized:
		return "redirect_unauthorized"
	}
	return "unknown"
}
