package repository

var (
	defaultComponents = []string{
		"Roadmap_Torus",
		"Teknik RoadMap_Torus",
		"Kaizen_Torus",
		"Problem_Torus",
	}
	defaultSprintEndTargets = []string{
		"Geliştirme",
		"Tamamlama",
		"Test Tamamlama",
		"Analiz Tamamlama",
	}
)

func (r *Repository) getOptions(key string, defaults []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var options []string
	found, err := r.load(key, &options)
	if err != nil {
		return nil, err
	}
	if !found {
		return append([]string(nil), defaults...), nil
	}
	if options == nil {
		options = []string{}
	}
	return options, nil
}

func (r *Repository) saveOptions(key string, options []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if options == nil {
		options = []string{}
	}
	return r.save(key, options)
}

func (r *Repository) GetComponents() ([]string, error) {
	return r.getOptions(keyComponents, defaultComponents)
}

func (r *Repository) SaveComponents(components []string) error {
	return r.saveOptions(keyComponents, components)
}

func (r *Repository) GetSprintEndTargets() ([]string, error) {
	return r.getOptions(keySprintEndTargets, defaultSprintEndTargets)
}

func (r *Repository) SaveSprintEndTargets(targets []string) error {
	return r.saveOptions(keySprintEndTargets, targets)
}
