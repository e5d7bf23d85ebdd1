package module

import "reparto/internal/services/catalog/domain"

// Ports is the port bundle catalog exposes to sibling modules. Insights
// resolves entities through it before querying the fact store
type Ports struct {
	Catalog domain.ServicePort
}
