package container

import (
	"github.com/juju/errors"
)

// Attribute-bag keys for the four parallel privileged-data lists on a
// container managed attribute.
const (
	PDValue   = "privilegedData.value"
	PDDisplay = "privilegedData.display"
	PDType    = "privilegedData.type"
	PDRef     = "privilegedData.$ref"
)

// PrivilegedItem is one privileged-data item referenced by a container.
type PrivilegedItem struct {
	Value string
	Name  string
	Type  string
	Ref   string
}

// PrivilegedItems reads the four parallel privileged-data lists off the
// container's managed attribute and zips them by index. The value list
// drives the item count; shorter trailing lists leave fields empty rather
// than erroring.
func (s *Service) PrivilegedItems() ([]PrivilegedItem, error) {
	ma, err := s.ContainerAttribute()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if ma == nil {
		return nil, errors.NotFoundf("container attribute for %s", s.target.ID)
	}

	values := ma.Attributes.StringList(PDValue)
	displays := ma.Attributes.StringList(PDDisplay)
	types := ma.Attributes.StringList(PDType)
	refs := ma.Attributes.StringList(PDRef)

	items := make([]PrivilegedItem, 0, len(values))
	for i, value := range values {
		item := PrivilegedItem{Value: value}
		if i < len(displays) {
			item.Name = displays[i]
		}
		if i < len(types) {
			item.Type = types[i]
		}
		if i < len(refs) {
			item.Ref = refs[i]
		}
		items = append(items, item)
	}
	return items, nil
}

// PrivilegedItemCount counts the container's privileged-data items.
func (s *Service) PrivilegedItemCount() (int, error) {
	items, err := s.PrivilegedItems()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
