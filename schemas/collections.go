package schemas

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/deploymenttheory/go-jamfpro-oapi/oapi"
	"github.com/deploymenttheory/go-jamfpro-oapi/resource"
)

// Jamf Pro API collection endpoints.
const (
	uriBuildings   = "/api/v1/buildings"
	uriCategories  = "/api/v1/categories"
	uriDepartments = "/api/v1/departments"
	uriAPIRoles    = "/api/v1/api-roles"
	uriScripts     = "/api/v1/scripts"
)

var (
	BuildingDefinition   = resource.Definition{Schema: BuildingSchema, Path: uriBuildings, UpdateMethod: http.MethodPut}
	CategoryDefinition   = resource.Definition{Schema: CategorySchema, Path: uriCategories, UpdateMethod: http.MethodPut}
	DepartmentDefinition = resource.Definition{Schema: DepartmentSchema, Path: uriDepartments, UpdateMethod: http.MethodPut}
	ApiRoleDefinition    = resource.Definition{Schema: ApiRoleSchema, Path: uriAPIRoles, UpdateMethod: http.MethodPut}
	ScriptDefinition     = resource.Definition{Schema: ScriptSchema, Path: uriScripts, UpdateMethod: http.MethodPut}
)

// NewBuildingCollection binds buildings to conn.
func NewBuildingCollection(conn resource.Connection, sugar *zap.SugaredLogger, opts ...resource.Option) *resource.Collection[*Building] {
	return resource.NewCollection(conn, BuildingDefinition, func(o *oapi.Object) *Building { return &Building{o} }, sugar, opts...)
}

// NewCategoryCollection binds categories to conn.
func NewCategoryCollection(conn resource.Connection, sugar *zap.SugaredLogger, opts ...resource.Option) *resource.Collection[*Category] {
	return resource.NewCollection(conn, CategoryDefinition, func(o *oapi.Object) *Category { return &Category{o} }, sugar, opts...)
}

// NewDepartmentCollection binds departments to conn.
func NewDepartmentCollection(conn resource.Connection, sugar *zap.SugaredLogger, opts ...resource.Option) *resource.Collection[*Department] {
	return resource.NewCollection(conn, DepartmentDefinition, func(o *oapi.Object) *Department { return &Department{o} }, sugar, opts...)
}

// NewApiRoleCollection binds API roles to conn.
func NewApiRoleCollection(conn resource.Connection, sugar *zap.SugaredLogger, opts ...resource.Option) *resource.Collection[*ApiRole] {
	return resource.NewCollection(conn, ApiRoleDefinition, func(o *oapi.Object) *ApiRole { return &ApiRole{o} }, sugar, opts...)
}

// NewScriptCollection binds scripts to conn.
func NewScriptCollection(conn resource.Connection, sugar *zap.SugaredLogger, opts ...resource.Option) *resource.Collection[*Script] {
	return resource.NewCollection(conn, ScriptDefinition, func(o *oapi.Object) *Script { return &Script{o} }, sugar, opts...)
}
