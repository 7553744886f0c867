package services

import (
	"errors"

	"ranking-league-system/models"
)

var errNotFound = errors.New("record not found")

type fakePlayerDirectory struct {
	players map[string]models.Player
}

func newFakePlayerDirectory(players ...models.Player) *fakePlayerDirectory {
	f := &fakePlayerDirectory{players: map[string]models.Player{}}
	for _, p := range players {
		f.players[p.ID] = p
	}
	return f
}

func (f *fakePlayerDirectory) FindByID(id string) (*models.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, errNotFound
	}
	return &p, nil
}

func (f *fakePlayerDirectory) ListAll() ([]models.Player, error) {
	all := make([]models.Player, 0, len(f.players))
	for _, p := range f.players {
		all = append(all, p)
	}
	return all, nil
}

type fakeCategoryDirectory struct {
	byPlayer map[string]models.Category
}

func (f *fakeCategoryDirectory) FindCategoryOfPlayer(playerID string) (*models.Category, error) {
	c, ok := f.byPlayer[playerID]
	if !ok {
		return nil, errNotFound
	}
	return &c, nil
}

type fakeChallengeRepo struct {
	challenges []*models.Challenge // insertion order
	failCreate error
	failUpdate error
}

func (f *fakeChallengeRepo) Create(challenge *models.Challenge) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	stored := *challenge
	f.challenges = append(f.challenges, &stored)
	return nil
}

func (f *fakeChallengeRepo) FindByID(id string) (*models.Challenge, error) {
	for _, c := range f.challenges {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeChallengeRepo) ListAll() ([]models.Challenge, error) {
	all := make([]models.Challenge, 0, len(f.challenges))
	for _, c := range f.challenges {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeChallengeRepo) ListByPlayer(playerID string) ([]models.Challenge, error) {
	var filtered []models.Challenge
	for _, c := range f.challenges {
		if c.HasParticipant(playerID) {
			filtered = append(filtered, *c)
		}
	}
	return filtered, nil
}

func (f *fakeChallengeRepo) Update(challenge *models.Challenge) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	for i, c := range f.challenges {
		if c.ID == challenge.ID {
			stored := *challenge
			f.challenges[i] = &stored
			return nil
		}
	}
	return errNotFound
}

type fakeMatchRepo struct {
	matches    map[string]models.Match
	failCreate error
	failDelete error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: map[string]models.Match{}}
}

func (f *fakeMatchRepo) Create(match *models.Match) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.matches[match.ID] = *match
	return nil
}

func (f *fakeMatchRepo) Delete(id string) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.matches, id)
	return nil
}

type fakePlayerRepo struct {
	players []*models.Player
	failAny error
}

func (f *fakePlayerRepo) Create(player *models.Player) error {
	if f.failAny != nil {
		return f.failAny
	}
	stored := *player
	f.players = append(f.players, &stored)
	return nil
}

func (f *fakePlayerRepo) FindByID(id string) (*models.Player, error) {
	for _, p := range f.players {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakePlayerRepo) FindByEmail(email string) (*models.Player, error) {
	for _, p := range f.players {
		if p.Email == email {
			found := *p
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakePlayerRepo) ListAll() ([]models.Player, error) {
	all := make([]models.Player, 0, len(f.players))
	for _, p := range f.players {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakePlayerRepo) SearchByName(folded string) ([]models.Player, error) {
	return f.ListAll()
}

func (f *fakePlayerRepo) Update(player *models.Player) error {
	for i, p := range f.players {
		if p.ID == player.ID {
			stored := *player
			f.players[i] = &stored
			return nil
		}
	}
	return errNotFound
}

func (f *fakePlayerRepo) Delete(id string) error {
	for i, p := range f.players {
		if p.ID == id {
			f.players = append(f.players[:i], f.players[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

type fakeCategoryRepo struct {
	categories []*models.Category
	members    map[string]string // playerID -> categoryID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{members: map[string]string{}}
}

func (f *fakeCategoryRepo) Create(category *models.Category) error {
	stored := *category
	f.categories = append(f.categories, &stored)
	return nil
}

func (f *fakeCategoryRepo) FindByName(name string) (*models.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			found := *c
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCategoryRepo) FindByPlayer(playerID string) (*models.Category, error) {
	categoryID, ok := f.members[playerID]
	if !ok {
		return nil, errNotFound
	}
	for _, c := range f.categories {
		if c.ID == categoryID {
			found := *c
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCategoryRepo) ListAll() ([]models.Category, error) {
	all := make([]models.Category, 0, len(f.categories))
	for _, c := range f.categories {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeCategoryRepo) Update(category *models.Category) error {
	for i, c := range f.categories {
		if c.ID == category.ID {
			stored := *category
			f.categories[i] = &stored
			return nil
		}
	}
	return errNotFound
}

func (f *fakeCategoryRepo) Delete(id string) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (f *fakeCategoryRepo) AddMember(categoryID, playerID string) error {
	f.members[playerID] = categoryID
	return nil
}
