// Package modeldto provides models for stub API data transfer objects.

package modeldto

import "time"

type (
	ResponseRoot struct {
		Message  string   `json:"message" example:"Voice collection API"`
		Datasets []string `json:"datasets"`
	}

	// ResponseSessionWithoutID mirrors a session object that lost its identifier.
	ResponseSessionWithoutID struct {
		Genero    string    `json:"genero"`
		Dataset   string    `json:"dataset"`
		CreatedAt time.Time `json:"created_at"`
	}
)
