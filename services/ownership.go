package services

import (
	"github.com/shutterfeed/api-go/models"
	"github.com/shutterfeed/api-go/utils"
)

// canMutate is the whole ownership policy: the acting identity must be the
// identity that created the resource.
func canMutate(resource models.Ownable, userID uint) bool {
	return resource.Owner() == userID
}

// requireOwner turns a policy deny into a Forbidden failure. Callers must
// have resolved the resource first: NotFound strictly precedes Forbidden on
// every mutating path.
func requireOwner(resource models.Ownable, userID uint, message string) error {
	if !canMutate(resource, userID) {
		return utils.Forbidden(message)
	}
	return nil
}
