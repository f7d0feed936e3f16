package users

import (
	"time"

	"construlab/internal/domain/access"
	"construlab/internal/domain/plans"
	"construlab/internal/domain/users"
	"construlab/internal/infra/stripe"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID,
		Key:           p.Name,
		Interval:      p.Interval,
		PriceEUR:      p.PriceEUR,
		StripePriceID: p.StripePriceID,
	}
}

func BuildSubscriptionDTO(u users.User) *SubscriptionDTO {
	if u.SubscriptionId == nil || *u.SubscriptionId == "" {
		return nil
	}
	return &SubscriptionDTO{
		Status:               stripe.NormalizeStripeStatus(u.StripeSubscriptionStatus),
		StripeSubscriptionID: u.SubscriptionId,
	}
}

// BuildTrialDTO reports whether the trial can still be started and, while it
// runs, how many days are left.
func BuildTrialDTO(now time.Time, u users.User) *TrialDTO {
	dto := &TrialDTO{
		Available: u.TrialUsedAt == nil && u.Role == users.RoleFree,
		UsedAt:    u.TrialUsedAt,
	}
	if u.SubscriptionStatus == users.StatusTrial && u.SubscriptionExpiresAt != nil {
		end := *u.SubscriptionExpiresAt
		d := 0
		if now.Before(end) {
			d = int(end.Sub(now).Hours() / 24)
		}
		dto.EndsAt = &end
		dto.DaysLeft = &d
	}
	return dto
}

func BuildAccessDTO(policy access.Policy) AccessDTO {
	caps := make([]string, 0, len(policy.Capabilities))
	for _, c := range policy.Capabilities {
		caps = append(caps, string(c))
	}
	return AccessDTO{
		State:        string(policy.State),
		Capabilities: caps,
	}
}

func BuildBrandingDTO(u users.User, policy access.Policy) BrandingDTO {
	return BrandingDTO{
		CompanyName: u.CompanyName,
		LogoURL:     u.CompanyLogoURL,
		Enabled:     policy.Can(access.CapWhiteLabel),
	}
}

func BuildMeResponse(now time.Time, u users.User) MeResponse {
	policy := access.ComputePolicy(now, &u)
	return MeResponse{
		User: UserDTO{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			AuthProvider: u.AuthProvider,
			IsVerified:   u.IsVerified,
		},
		Billing: BillingDTO{
			Status:       u.SubscriptionStatus,
			ExpiresAt:    u.SubscriptionExpiresAt,
			Plan:         BuildPlanDTO(u.Plan),
			Subscription: BuildSubscriptionDTO(u),
			Trial:        BuildTrialDTO(now, u),
		},
		Access:   BuildAccessDTO(policy),
		Branding: BuildBrandingDTO(u, policy),
	}
}
