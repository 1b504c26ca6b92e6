package app

import (
	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/registry"
)

// sceneFamilies adapts a scene's family declarations to registry.Module so
// they are declared the same way as compiled-in modules.
type sceneFamilies []*config.FamilyDef

func (s sceneFamilies) Register(r *registry.Registry) {
	for _, f := range s {
		r.DeclareFamily(registry.Family{Name: f.Name, Aliases: f.Aliases, Description: f.Description})
	}
}
