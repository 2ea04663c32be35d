package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/model"
)

// RefreshPet fetches the pet record and the static level table concurrently
// and replaces the local snapshot. A missing pet is an expected state, not
// an error.
func (s *Service) RefreshPet(ctx context.Context) error {
	var (
		pet       model.Pet
		found     bool
		petErr    error
		levels    []model.PetLevel
		levelsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		pet, found, petErr = s.client.GetPet(ctx)
	}()
	go func() {
		defer wg.Done()
		levels, levelsErr = s.client.PetLevels(ctx)
	}()
	wg.Wait()

	if petErr != nil {
		return fmt.Errorf("load pet: %w", petErr)
	}
	if levelsErr != nil {
		return fmt.Errorf("load pet levels: %w", levelsErr)
	}

	s.mu.Lock()
	s.pet = pet
	s.hasPet = found
	s.levels = levels
	s.mu.Unlock()
	return nil
}

func (s *Service) CreatePet(ctx context.Context, name, spriteURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPetNameRequired
	}
	if len(name) > 50 {
		return ErrPetNameTooLong
	}

	if _, err := s.client.CreatePet(ctx, model.CreatePetRequest{Name: name, URL: spriteURL}); err != nil {
		return fmt.Errorf("create pet: %w", err)
	}
	return s.RefreshPet(ctx)
}

// FeedPet spends 10 points to lower hunger. Gated on the local snapshot; the
// server re-validates.
func (s *Service) FeedPet(ctx context.Context) error {
	pet, ok := s.Pet()
	if !ok {
		return ErrNoPet
	}
	if pet.PointsTotal < game.FeedCost {
		return fmt.Errorf("feed: %w (have %d, need %d)", ErrNotEnoughPoints, pet.PointsTotal, game.FeedCost)
	}
	if pet.Hunger >= game.StatMax {
		return fmt.Errorf("feed: hunger %w", ErrStatAtMax)
	}

	updated, err := s.client.FeedPet(ctx)
	if err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	s.applyPet(updated)
	return nil
}

// HealPet spends 20 points to restore health.
func (s *Service) HealPet(ctx context.Context) error {
	pet, ok := s.Pet()
	if !ok {
		return ErrNoPet
	}
	if pet.PointsTotal < game.HealCost {
		return fmt.Errorf("heal: %w (have %d, need %d)", ErrNotEnoughPoints, pet.PointsTotal, game.HealCost)
	}
	if pet.Health >= game.StatMax {
		return fmt.Errorf("heal: health %w", ErrStatAtMax)
	}

	updated, err := s.client.HealPet(ctx)
	if err != nil {
		return fmt.Errorf("heal: %w", err)
	}
	s.applyPet(updated)
	return nil
}

// BoostEnergy spends 15 points to restore energy.
func (s *Service) BoostEnergy(ctx context.Context) error {
	pet, ok := s.Pet()
	if !ok {
		return ErrNoPet
	}
	if pet.PointsTotal < game.BoostCost {
		return fmt.Errorf("boost energy: %w (have %d, need %d)", ErrNotEnoughPoints, pet.PointsTotal, game.BoostCost)
	}
	if pet.Energy >= game.StatMax {
		return fmt.Errorf("boost energy: energy %w", ErrStatAtMax)
	}

	updated, err := s.client.BoostEnergy(ctx)
	if err != nil {
		return fmt.Errorf("boost energy: %w", err)
	}
	s.applyPet(updated)
	return nil
}

func (s *Service) applyPet(pet model.Pet) {
	s.mu.Lock()
	s.pet = pet
	s.hasPet = true
	s.mu.Unlock()
	if s.pointsChanged != nil {
		s.pointsChanged(pet.PointsTotal)
	}
}
