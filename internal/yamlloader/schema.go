package yamlloader

type document struct {
	Families []*familyDoc `yaml:"families"`
	Root     *nodeDoc     `yaml:"root"`
	Queries  []*queryDoc  `yaml:"queries"`
	Detach   []string     `yaml:"detach"`
}

type familyDoc struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
}

type nodeDoc struct {
	Name             string              `yaml:"name"`
	Class            string              `yaml:"class"`
	RegistrationName string              `yaml:"registration_name"`
	Props            map[string]any      `yaml:"props"`
	Context          *contextDoc         `yaml:"context"`
	Register         []*registerDoc      `yaml:"register"`
	Multiregister    []*multiregisterDoc `yaml:"multiregister"`
	Children         []*nodeDoc          `yaml:"children"`
}

type contextDoc struct {
	LoggingName     string    `yaml:"logging_name"`
	ReRegister      []*keyDoc `yaml:"re_register"`
	ReMultiregister []string  `yaml:"re_multiregister"`
}

type keyDoc struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id"`
}

type registerDoc struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	ID             string `yaml:"id"`
	IntoOwnContext bool   `yaml:"into_own_context"`
}

type multiregisterDoc struct {
	Name           string `yaml:"name"`
	Family         string `yaml:"family"`
	IntoOwnContext bool   `yaml:"into_own_context"`
}

type queryDoc struct {
	Name        string  `yaml:"name"`
	Lookup      *string `yaml:"lookup"`
	TryLookup   *string `yaml:"try_lookup"`
	Collect     *string `yaml:"collect"`
	Nearest     bool    `yaml:"nearest"`
	ID          string  `yaml:"id"`
	From        string  `yaml:"from"`
	AfterDetach bool    `yaml:"after_detach"`
}
