package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeRoles(t *testing.T) {
	// Valores vacíos o desconocidos caen en el rol estudiante.
	assert.Equal(t, []string{RoleStudent}, NormalizeRoles(nil))
	assert.Equal(t, []string{RoleStudent}, NormalizeRoles(""))
	assert.Equal(t, []string{RoleStudent}, NormalizeRoles([]string{}))
	assert.Equal(t, []string{RoleStudent}, NormalizeRoles(42))
	assert.Equal(t, []string{RoleStudent}, NormalizeRoles([]interface{}{1, ""}))

	assert.Equal(t, []string{RoleAdmin}, NormalizeRoles(RoleAdmin))
	assert.Equal(t, []string{RoleAdmin, RoleTutor}, NormalizeRoles([]string{RoleAdmin, RoleTutor}))
	assert.Equal(t, []string{RoleTutor}, NormalizeRoles([]interface{}{RoleTutor, 7}))
	assert.Equal(t, []string{RoleTutor}, NormalizeRoles(primitive.A{RoleTutor, 7}))
	assert.Equal(t, []string{RoleAdmin}, NormalizeRoles(RoleList{RoleAdmin}))
}

// Los documentos antiguos guardan el rol como string suelto; el decode
// BSON debe aceptarlos igual que el formato actual en lista.
func TestRoleListDecodeBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"name": "Ana", "roles": "student"})
	require.NoError(t, err)

	var legacy User
	require.NoError(t, bson.Unmarshal(raw, &legacy))
	assert.Equal(t, RoleList{RoleStudent}, legacy.Roles)
	assert.True(t, legacy.IsStudent())

	raw, err = bson.Marshal(bson.M{"name": "Bruno", "roles": []string{RoleAdmin, RoleTutor}})
	require.NoError(t, err)

	var current User
	require.NoError(t, bson.Unmarshal(raw, &current))
	assert.Equal(t, RoleList{RoleAdmin, RoleTutor}, current.Roles)

	raw, err = bson.Marshal(bson.M{"name": "Clara"})
	require.NoError(t, err)

	var missing User
	require.NoError(t, bson.Unmarshal(raw, &missing))
	assert.Empty(t, missing.Roles)
}

func TestHasRole(t *testing.T) {
	user := &User{Roles: []string{RoleStudent, RoleTutor}}

	assert.True(t, user.HasRole(RoleStudent))
	assert.True(t, user.HasRole(RoleAdmin, RoleTutor))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.False(t, user.HasRole())

	empty := &User{}
	assert.False(t, empty.HasRole(RoleStudent))
}

func TestRoleShortcuts(t *testing.T) {
	admin := &User{Roles: []string{RoleAdmin}}
	student := &User{Roles: []string{RoleStudent}}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsStudent())
	assert.True(t, student.IsStudent())
	assert.False(t, student.IsAdmin())
}

func TestIsEnrolledIn(t *testing.T) {
	courseA := primitive.NewObjectID()
	courseB := primitive.NewObjectID()
	user := &User{EnrolledCourses: []primitive.ObjectID{courseA}}

	assert.True(t, user.IsEnrolledIn(courseA))
	assert.False(t, user.IsEnrolledIn(courseB))

	none := &User{}
	assert.False(t, none.IsEnrolledIn(courseA))
}
