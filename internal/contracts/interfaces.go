package contracts

// RequirementNormalizer resolves raw requirements into a complete record
// ⭐ SSOT: normalization interface
type RequirementNormalizer interface {
	Normalize(raw any) (*NormalizedRequirements, error)
}

// SquadBuilder constructs and evaluates a squad for normalized requirements
// ⭐ SSOT: squad construction interface
type SquadBuilder interface {
	Build(reqs *NormalizedRequirements) (*Squad, CheckResult)
}
