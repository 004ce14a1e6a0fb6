package models

// Project identifies one of the storefronts sharing this admin backend.
type Project string

const (
	ProjectGhadaq  Project = "ghadaq"
	ProjectManasik Project = "manasik"
)

// Projects lists every storefront in a stable order.
var Projects = []Project{ProjectGhadaq, ProjectManasik}

// Valid reports whether p names a known storefront.
func (p Project) Valid() bool {
	for _, known := range Projects {
		if p == known {
			return true
		}
	}
	return false
}
