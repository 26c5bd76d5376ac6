package actions

type CollectLoot struct{}

func (a *CollectLoot) Validate(ab *ActionBuilder) error {
	return nil
}

func (a *CollectLoot) Build(ab *ActionBuilder) *ActionBuilder {
	return ab.CollectLoot()
}
