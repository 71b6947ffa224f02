package reader

import "github.com/classlens/classlens/diagram"

// XML element tags used by the source documents this package reads.
const (
	tagAssociation      = "Association"
	tagAssociationEnd   = "AssociationEnd"
	tagAttribute        = "Attribute"
	tagClass            = "Class"
	tagDataType         = "DataType"
	tagDependency       = "Dependency"
	tagFromEnd          = "FromEnd"
	tagGeneralization   = "Generalization"
	tagModelChildren    = "ModelChildren"
	tagModels           = "Models"
	tagOperation        = "Operation"
	tagPackage          = "Package"
	tagParameter        = "Parameter"
	tagRealization      = "Realization"
	tagReturnType       = "ReturnType"
	tagStereotype       = "Stereotype"
	tagStereotypes      = "Stereotypes"
	tagToEnd            = "ToEnd"
	tagType             = "Type"
	tagUsage            = "Usage"
)

// XML attribute names used by the source documents this package reads.
const (
	attrAbstract        = "Abstract"
	attrAggregationKind = "AggregationKind"
	attrEndModelElement = "EndModelElement"
	attrFrom            = "From"
	attrID              = "Id"
	attrIDRef           = "Idref"
	attrMultiplicity    = "Multiplicity"
	attrName            = "Name"
	attrScope           = "Scope"
	attrTo              = "To"
)

// relationshipTags lists the directed-edge tags parsed as plain
// Relationships, in the order they are scanned for. Usage is treated as a
// Dependency alias (see relKindForTag).
var relationshipTags = []string{tagDependency, tagGeneralization, tagRealization, tagUsage}

// relKindForTag maps a relationship element's tag to its diagram.RelKind.
// ok is false for any tag that is not a recognized relationship tag.
func relKindForTag(tag string) (kind diagram.RelKind, ok bool) {
	switch tag {
	case tagDependency, tagUsage:
		return diagram.DependencyKind, true
	case tagGeneralization:
		return diagram.GeneralizationKind, true
	case tagRealization:
		return diagram.RealizationKind, true
	default:
		return 0, false
	}
}
