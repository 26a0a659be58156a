package test

import (
	storeTest "github.com/glucotrack/monitoring/store/test"
	"github.com/glucotrack/monitoring/users"
)

func RandomPatient() users.User {
	return users.User{
		UserId:    storeTest.Faker.IntBetween(1, 100000),
		Role:      users.RolePatient,
		FirstName: storeTest.Faker.Person().FirstName(),
		LastName:  storeTest.Faker.Person().LastName(),
	}
}

func RandomDoctor() users.User {
	user := RandomPatient()
	user.Role = users.RoleDoctor
	return user
}
