package settings

// Layer applies next on top of base using the framework's assignment
// semantics and returns the result. Neither argument is modified.
//
//   - Databases and TrustedHostPatterns are assigned wholesale, so a non-nil
//     value in next replaces the one in base.
//   - Config overrides and environment assignments are keyed; next wins per key.
//   - The CI flag stays true once set.
func Layer(base, next Settings) Settings {
	out := Settings{
		CI:                  base.CI || next.CI,
		Databases:           base.Databases,
		TrustedHostPatterns: base.TrustedHostPatterns,
	}

	if next.Databases != nil {
		out.Databases = next.Databases
	}
	if next.TrustedHostPatterns != nil {
		out.TrustedHostPatterns = next.TrustedHostPatterns
	}

	for _, a := range base.Environment {
		out.Environment = setEnv(out.Environment, a)
	}
	for _, a := range next.Environment {
		out.Environment = setEnv(out.Environment, a)
	}

	for _, ov := range base.Config {
		out.Config = out.Config.Set(ov)
	}
	for _, ov := range next.Config {
		out.Config = out.Config.Set(ov)
	}

	return out
}

func setEnv(env []EnvAssignment, a EnvAssignment) []EnvAssignment {
	for i := range env {
		if env[i].Name == a.Name {
			env[i].Value = a.Value
			return env
		}
	}
	return append(env, a)
}
