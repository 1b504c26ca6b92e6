package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level construct a scene file may contain.
type fileRoot struct {
	Families []*familyBlock `hcl:"family,block"`
	Nodes    []*nodeBlock   `hcl:"node,block"`
	Queries  []*queryBlock  `hcl:"query,block"`
	Detach   hcl.Expression `hcl:"detach,optional"`
}

type familyBlock struct {
	Name        string   `hcl:"name,label"`
	Aliases     []string `hcl:"aliases,optional"`
	Description string   `hcl:"description,optional"`
}

type nodeBlock struct {
	Name             string                `hcl:"name,label"`
	Class            string                `hcl:"class,optional"`
	RegistrationName string                `hcl:"registration_name,optional"`
	Props            hcl.Expression        `hcl:"props,optional"`
	Context          *contextBlock         `hcl:"context,block"`
	Registers        []*registerBlock      `hcl:"register,block"`
	Multiregisters   []*multiregisterBlock `hcl:"multiregister,block"`
	Children         []*nodeBlock          `hcl:"node,block"`
}

type contextBlock struct {
	LoggingName     string      `hcl:"logging_name,optional"`
	ReRegister      []*keyBlock `hcl:"re_register,block"`
	ReMultiregister []string    `hcl:"re_multiregister,optional"`
}

type keyBlock struct {
	Type string `hcl:"type"`
	ID   string `hcl:"id,optional"`
}

type registerBlock struct {
	Name           string `hcl:"name,label"`
	Type           string `hcl:"type,optional"`
	ID             string `hcl:"id,optional"`
	IntoOwnContext bool   `hcl:"into_own_context,optional"`
}

type multiregisterBlock struct {
	Name           string `hcl:"name,label"`
	Family         string `hcl:"family,optional"`
	IntoOwnContext bool   `hcl:"into_own_context,optional"`
}

// queryBlock sets exactly one of Lookup, TryLookup, Collect or Nearest.
type queryBlock struct {
	Name        string         `hcl:"name,label"`
	Lookup      *string        `hcl:"lookup,optional"`
	TryLookup   *string        `hcl:"try_lookup,optional"`
	Collect     *string        `hcl:"collect,optional"`
	Nearest     *bool          `hcl:"nearest,optional"`
	ID          string         `hcl:"id,optional"`
	From        hcl.Expression `hcl:"from"`
	AfterDetach bool           `hcl:"after_detach,optional"`
}
