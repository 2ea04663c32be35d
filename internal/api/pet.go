package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ProtoSG/momentum-front/internal/model"
)

func (c *Client) CreatePet(ctx context.Context, req model.CreatePetRequest) (model.Pet, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodPost, "/pet", req, &pet)
	return pet, err
}

// GetPet returns the current user's pet. found is false when the backend
// reports there is none yet; that is an expected state, not an error.
func (c *Client) GetPet(ctx context.Context) (model.Pet, bool, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodGet, "/pet", nil, &pet)
	if IsStatus(err, http.StatusNotFound) {
		return model.Pet{}, false, nil
	}
	if err != nil {
		return model.Pet{}, false, err
	}
	return pet, true, nil
}

// AddPoints writes a points-ledger entry. The backend returns no body.
func (c *Client) AddPoints(ctx context.Context, entry model.PointsLedger) error {
	return c.do(ctx, http.MethodPost, "/pet/points", entry, nil)
}

// AddExperience awards XP to the pet. The backend takes the amount as a raw
// integer body, not JSON.
func (c *Client) AddExperience(ctx context.Context, amount int) (model.Pet, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodPost, "/pet/experience", rawText(strconv.Itoa(amount)), &pet)
	return pet, err
}

func (c *Client) FeedPet(ctx context.Context) (model.Pet, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodPost, "/pet/feed", nil, &pet)
	return pet, err
}

func (c *Client) HealPet(ctx context.Context) (model.Pet, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodPost, "/pet/heal", nil, &pet)
	return pet, err
}

func (c *Client) BoostEnergy(ctx context.Context) (model.Pet, error) {
	var pet model.Pet
	err := c.do(ctx, http.MethodPost, "/pet/boost-energy", nil, &pet)
	return pet, err
}

func (c *Client) PetLevels(ctx context.Context) ([]model.PetLevel, error) {
	var levels []model.PetLevel
	err := c.do(ctx, http.MethodGet, "/pet-levels", nil, &levels)
	return levels, err
}
