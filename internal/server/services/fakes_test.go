package services

import (
	"context"
	"database/sql"
	"io"
	"sort"
	"sync"

	"github.com/dmitrijs2005/recipeapp/internal/common"
	"github.com/dmitrijs2005/recipeapp/internal/dbx"
	"github.com/dmitrijs2005/recipeapp/internal/server/models"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/ingredients"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/recipes"
	"github.com/dmitrijs2005/recipeapp/internal/server/repositories/tags"
)

// --- accounts ---

type fakeAccountsRepo struct {
	byEmail map[string]*models.Account

	createErr error
	getErr    error
	updateErr error
}

func newFakeAccountsRepo() *fakeAccountsRepo {
	return &fakeAccountsRepo{byEmail: map[string]*models.Account{}}
}

func (f *fakeAccountsRepo) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *a
	f.byEmail[a.Email] = &cp
	return a, nil
}

func (f *fakeAccountsRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAccountsRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccountsRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, a := range f.byEmail {
		if a.ID == id {
			a.PasswordHash = hash
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeAccountsRepo) Delete(_ context.Context, id string) error {
	for email, a := range f.byEmail {
		if a.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return common.ErrorNotFound
}

// --- tags and ingredients ---

type fakeTagsRepo struct {
	items   map[string]*models.Tag
	listErr error
}

func (f *fakeTagsRepo) Create(_ context.Context, t *models.Tag) (*models.Tag, error) {
	f.items[t.ID] = t
	return t, nil
}

func (f *fakeTagsRepo) Get(_ context.Context, userID, id string) (*models.Tag, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeTagsRepo) ListByUser(_ context.Context, userID string) ([]*models.Tag, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Tag{}
	for _, t := range f.items {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (f *fakeTagsRepo) Delete(_ context.Context, userID, id string) error {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeIngredientsRepo struct {
	items map[string]*models.Ingredient
}

func (f *fakeIngredientsRepo) Create(_ context.Context, in *models.Ingredient) (*models.Ingredient, error) {
	f.items[in.ID] = in
	return in, nil
}

func (f *fakeIngredientsRepo) Get(_ context.Context, userID, id string) (*models.Ingredient, error) {
	in, ok := f.items[id]
	if !ok || in.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return in, nil
}

func (f *fakeIngredientsRepo) ListByUser(_ context.Context, userID string) ([]*models.Ingredient, error) {
	out := []*models.Ingredient{}
	for _, in := range f.items {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	return out, nil
}

func (f *fakeIngredientsRepo) Delete(_ context.Context, userID, id string) error {
	in, ok := f.items[id]
	if !ok || in.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

// --- recipes ---

type fakeRecipesRepo struct {
	items       map[string]*models.Recipe
	tags        map[string][]string
	ingredients map[string][]string

	lastFilter  recipes.Filter
	createErr   error
	setImageErr error
}

func newFakeRecipesRepo() *fakeRecipesRepo {
	return &fakeRecipesRepo{
		items:       map[string]*models.Recipe{},
		tags:        map[string][]string{},
		ingredients: map[string][]string{},
	}
}

func (f *fakeRecipesRepo) Create(_ context.Context, r *models.Recipe) (*models.Recipe, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *r
	cp.TagIDs, cp.IngredientIDs = nil, nil
	f.items[r.ID] = &cp
	return r, nil
}

func (f *fakeRecipesRepo) AddTag(_ context.Context, recipeID, tagID string) error {
	f.tags[recipeID] = append(f.tags[recipeID], tagID)
	return nil
}

func (f *fakeRecipesRepo) AddIngredient(_ context.Context, recipeID, ingredientID string) error {
	f.ingredients[recipeID] = append(f.ingredients[recipeID], ingredientID)
	return nil
}

func (f *fakeRecipesRepo) Get(_ context.Context, userID, id string) (*models.Recipe, error) {
	r, ok := f.items[id]
	if !ok || r.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *r
	cp.TagIDs = append([]string{}, f.tags[id]...)
	cp.IngredientIDs = append([]string{}, f.ingredients[id]...)
	return &cp, nil
}

func (f *fakeRecipesRepo) List(_ context.Context, userID string, filter recipes.Filter) ([]*models.Recipe, error) {
	f.lastFilter = filter
	out := []*models.Recipe{}
	for _, r := range f.items {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipesRepo) SetImage(_ context.Context, userID, id, key string) error {
	if f.setImageErr != nil {
		return f.setImageErr
	}
	r, ok := f.items[id]
	if !ok || r.UserID != userID {
		return common.ErrorNotFound
	}
	r.Image = key
	return nil
}

func (f *fakeRecipesRepo) Delete(_ context.Context, userID, id string) error {
	r, ok := f.items[id]
	if !ok || r.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

// --- manager ---

type fakeRepoManager struct {
	accounts    *fakeAccountsRepo
	tags        *fakeTagsRepo
	ingredients *fakeIngredientsRepo
	recipes     *fakeRecipesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		accounts:    newFakeAccountsRepo(),
		tags:        &fakeTagsRepo{items: map[string]*models.Tag{}},
		ingredients: &fakeIngredientsRepo{items: map[string]*models.Ingredient{}},
		recipes:     newFakeRecipesRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return m.accounts }
func (m *fakeRepoManager) Tags(dbx.DBTX) tags.Repository                { return m.tags }
func (m *fakeRepoManager) Ingredients(dbx.DBTX) ingredients.Repository  { return m.ingredients }
func (m *fakeRepoManager) Recipes(dbx.DBTX) recipes.Repository          { return m.recipes }

// --- storage ---

type fakeStorage struct {
	mu       sync.Mutex
	objects  map[string][]byte
	presigns []string
	deleted  []string

	presignErr error
	uploadErr  error
	deleteErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) PresignPut(_ context.Context, key string) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presigns = append(f.presigns, key)
	return "https://s3.test/recipes/" + key + "?X-Amz-Signature=sig", nil
}

func (f *fakeStorage) Upload(_ context.Context, key string, body io.Reader) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = b
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}
