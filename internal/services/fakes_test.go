package services

import (
	"context"
	"errors"
	"io"
	"time"

	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"

	"gorm.io/gorm"
)

// testDB builds a request-shaped handle; the fakes below never touch SQL.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db, Context: context.Background()}
	return db
}

// --- storage fake ---

type fakeStorage struct {
	saved      map[string]string
	deleted    []string
	failDelete bool
	failKeys   map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string]string), failKeys: make(map[string]bool)}
}

func (s *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	s.saved[key] = contentType
	return nil
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	if s.failDelete || s.failKeys[key] {
		return errors.New("storage unavailable")
	}
	s.deleted = append(s.deleted, key)
	delete(s.saved, key)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := s.saved[key]
	return ok, nil
}

func (s *fakeStorage) GetURL(key string) string {
	return "http://files.test/" + key
}

// --- project repository fake ---

type fakeProjectRepo struct {
	projects    map[string]*models.Project
	marked      map[string]bool
	hardDeleted []string
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[string]*models.Project),
		marked:   make(map[string]bool),
	}
}

func (r *fakeProjectRepo) Create(db *gorm.DB, project *models.Project) error {
	if project.ID == "" {
		project.ID = "project-" + project.Slug
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok || r.marked[id] {
		return nil, repositories.ErrProjectNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) FindBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	for id, project := range r.projects {
		if project.Slug == slug && !r.marked[id] {
			return project, nil
		}
	}
	return nil, repositories.ErrProjectNotFound
}

func (r *fakeProjectRepo) List(db *gorm.DB, filter repositories.ProjectFilter) ([]models.Project, int64, error) {
	var out []models.Project
	for id, project := range r.projects {
		if r.marked[id] {
			continue
		}
		if filter.PublishedOnly && !project.IsPublished {
			continue
		}
		out = append(out, *project)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) CountByCategory(db *gorm.DB, categoryID string) (int64, error) {
	var count int64
	for id, project := range r.projects {
		if !r.marked[id] && project.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProjectRepo) Update(db *gorm.DB, project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return repositories.ErrProjectNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) MarkDeleted(db *gorm.DB, id string) error {
	if _, ok := r.projects[id]; !ok {
		return repositories.ErrProjectNotFound
	}
	r.marked[id] = true
	return nil
}

func (r *fakeProjectRepo) HardDelete(db *gorm.DB, id string) error {
	delete(r.projects, id)
	delete(r.marked, id)
	r.hardDeleted = append(r.hardDeleted, id)
	return nil
}

func (r *fakeProjectRepo) FindMarkedDeleted(db *gorm.DB) ([]models.Project, error) {
	var out []models.Project
	for id, project := range r.projects {
		if r.marked[id] {
			out = append(out, *project)
		}
	}
	return out, nil
}

// --- category repository fake ---

type fakeCategoryRepo struct {
	categories map[string]*models.Category
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*models.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(db *gorm.DB, category *models.Category) error {
	for _, existing := range r.categories {
		if existing.Name == category.Name || existing.Slug == category.Slug {
			return repositories.ErrCategoryAlreadyExists
		}
	}
	if category.ID == "" {
		category.ID = "category-" + category.Slug
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, repositories.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindBySlug(db *gorm.DB, slug string) (*models.Category, error) {
	for _, category := range r.categories {
		if category.Slug == slug {
			return category, nil
		}
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindActive(db *gorm.DB) ([]models.Category, error) {
	var out []models.Category
	for _, category := range r.categories {
		if category.IsActive {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) FindAll(db *gorm.DB) ([]models.Category, error) {
	var out []models.Category
	for _, category := range r.categories {
		out = append(out, *category)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(db *gorm.DB, category *models.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := r.categories[id]; !ok {
		return repositories.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// --- gallery repository fake ---

type fakeGalleryRepo struct {
	items      map[string]*models.GalleryItem
	marked     map[string]bool
	lastFilter repositories.GalleryFilter
}

func newFakeGalleryRepo(items ...*models.GalleryItem) *fakeGalleryRepo {
	r := &fakeGalleryRepo{
		items:  make(map[string]*models.GalleryItem),
		marked: make(map[string]bool),
	}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeGalleryRepo) Create(db *gorm.DB, item *models.GalleryItem) error {
	if item.ID == "" {
		item.ID = "gallery-" + item.Title
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeGalleryRepo) FindByID(db *gorm.DB, id string) (*models.GalleryItem, error) {
	item, ok := r.items[id]
	if !ok || r.marked[id] {
		return nil, repositories.ErrGalleryItemNotFound
	}
	return item, nil
}

func (r *fakeGalleryRepo) List(db *gorm.DB, filter repositories.GalleryFilter) ([]models.GalleryItem, int64, error) {
	r.lastFilter = filter
	var out []models.GalleryItem
	for id, item := range r.items {
		if r.marked[id] {
			continue
		}
		if filter.ActiveOnly && !item.IsActive {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *fakeGalleryRepo) Update(db *gorm.DB, item *models.GalleryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeGalleryRepo) UpdateOrders(db *gorm.DB, orders map[string]int) error {
	for id := range orders {
		if _, ok := r.items[id]; !ok {
			return repositories.ErrGalleryItemNotFound
		}
	}
	for id, order := range orders {
		r.items[id].Order = order
	}
	return nil
}

func (r *fakeGalleryRepo) MarkDeleted(db *gorm.DB, id string) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrGalleryItemNotFound
	}
	r.marked[id] = true
	return nil
}

func (r *fakeGalleryRepo) HardDelete(db *gorm.DB, id string) error {
	delete(r.items, id)
	delete(r.marked, id)
	return nil
}

func (r *fakeGalleryRepo) FindMarkedDeleted(db *gorm.DB) ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	for id, item := range r.items {
		if r.marked[id] {
			out = append(out, *item)
		}
	}
	return out, nil
}

// --- contact repository fake ---

type fakeContactRepo struct {
	contacts map[string]*models.Contact
	marked   map[string]bool
}

func newFakeContactRepo(contacts ...*models.Contact) *fakeContactRepo {
	r := &fakeContactRepo{
		contacts: make(map[string]*models.Contact),
		marked:   make(map[string]bool),
	}
	for _, c := range contacts {
		r.contacts[c.ID] = c
	}
	return r
}

func (r *fakeContactRepo) Create(db *gorm.DB, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = "contact-" + contact.Email
	}
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) FindByID(db *gorm.DB, id string) (*models.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok || r.marked[id] {
		return nil, repositories.ErrContactNotFound
	}
	return contact, nil
}

func (r *fakeContactRepo) List(db *gorm.DB, filter repositories.ContactFilter) ([]models.Contact, int64, error) {
	var out []models.Contact
	for id, contact := range r.contacts {
		if r.marked[id] {
			continue
		}
		if filter.Status != "" && string(contact.Status) != filter.Status {
			continue
		}
		out = append(out, *contact)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContactRepo) Update(db *gorm.DB, contact *models.Contact) error {
	r.contacts[contact.ID] = contact
	return nil
}

func (r *fakeContactRepo) MarkDeleted(db *gorm.DB, id string) error {
	if _, ok := r.contacts[id]; !ok {
		return repositories.ErrContactNotFound
	}
	r.marked[id] = true
	return nil
}

func (r *fakeContactRepo) HardDelete(db *gorm.DB, id string) error {
	delete(r.contacts, id)
	delete(r.marked, id)
	return nil
}

func (r *fakeContactRepo) FindMarkedDeleted(db *gorm.DB) ([]models.Contact, error) {
	var out []models.Contact
	for id, contact := range r.contacts {
		if r.marked[id] {
			out = append(out, *contact)
		}
	}
	return out, nil
}

// --- quote repository fake ---

type fakeQuoteRepo struct {
	quotes map[string]*models.Quote
	marked map[string]bool
}

func newFakeQuoteRepo(quotes ...*models.Quote) *fakeQuoteRepo {
	r := &fakeQuoteRepo{
		quotes: make(map[string]*models.Quote),
		marked: make(map[string]bool),
	}
	for _, q := range quotes {
		r.quotes[q.ID] = q
	}
	return r
}

func (r *fakeQuoteRepo) Create(db *gorm.DB, quote *models.Quote) error {
	if quote.ID == "" {
		quote.ID = "quote-" + quote.Email
	}
	r.quotes[quote.ID] = quote
	return nil
}

func (r *fakeQuoteRepo) FindByID(db *gorm.DB, id string) (*models.Quote, error) {
	quote, ok := r.quotes[id]
	if !ok || r.marked[id] {
		return nil, repositories.ErrQuoteNotFound
	}
	return quote, nil
}

func (r *fakeQuoteRepo) List(db *gorm.DB, filter repositories.QuoteFilter) ([]models.Quote, int64, error) {
	var out []models.Quote
	for id, quote := range r.quotes {
		if r.marked[id] {
			continue
		}
		out = append(out, *quote)
	}
	return out, int64(len(out)), nil
}

func (r *fakeQuoteRepo) Update(db *gorm.DB, quote *models.Quote) error {
	r.quotes[quote.ID] = quote
	return nil
}

func (r *fakeQuoteRepo) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	counts := make(map[string]int64)
	for id, quote := range r.quotes {
		if r.marked[id] {
			continue
		}
		counts[string(quote.Status)]++
	}
	return counts, nil
}

func (r *fakeQuoteRepo) MarkDeleted(db *gorm.DB, id string) error {
	if _, ok := r.quotes[id]; !ok {
		return repositories.ErrQuoteNotFound
	}
	r.marked[id] = true
	return nil
}

func (r *fakeQuoteRepo) HardDelete(db *gorm.DB, id string) error {
	delete(r.quotes, id)
	delete(r.marked, id)
	return nil
}

func (r *fakeQuoteRepo) FindMarkedDeleted(db *gorm.DB) ([]models.Quote, error) {
	var out []models.Quote
	for id, quote := range r.quotes {
		if r.marked[id] {
			out = append(out, *quote)
		}
	}
	return out, nil
}

// --- user repository fake ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(db *gorm.DB) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := r.users[id]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) Count(db *gorm.DB) (int64, error) {
	return int64(len(r.users)), nil
}

// --- outbox repository fake ---

type fakeOutboxRepo struct {
	entries []*models.EmailOutbox
}

func (r *fakeOutboxRepo) Enqueue(db *gorm.DB, entry *models.EmailOutbox) error {
	if entry.ID == "" {
		entry.ID = "outbox-" + entry.To + "-" + entry.Template
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeOutboxRepo) FindPending(db *gorm.DB, limit int) ([]models.EmailOutbox, error) {
	var out []models.EmailOutbox
	for _, entry := range r.entries {
		if entry.Status == models.OutboxStatusPending && len(out) < limit {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *fakeOutboxRepo) MarkSent(db *gorm.DB, id string, sentAt time.Time) error {
	for _, entry := range r.entries {
		if entry.ID == id {
			entry.Status = models.OutboxStatusSent
			entry.SentAt = &sentAt
			return nil
		}
	}
	return repositories.ErrOutboxEntryNotFound
}

func (r *fakeOutboxRepo) MarkAttemptFailed(db *gorm.DB, id string, attempts int, lastError string, final bool) error {
	for _, entry := range r.entries {
		if entry.ID == id {
			entry.Attempts = attempts
			entry.LastError = lastError
			if final {
				entry.Status = models.OutboxStatusFailed
			}
			return nil
		}
	}
	return repositories.ErrOutboxEntryNotFound
}

// --- testimonial repository fake ---

type fakeTestimonialRepo struct {
	testimonials map[string]*models.Testimonial
	lastFilter   repositories.TestimonialFilter
}

func newFakeTestimonialRepo(testimonials ...*models.Testimonial) *fakeTestimonialRepo {
	r := &fakeTestimonialRepo{testimonials: make(map[string]*models.Testimonial)}
	for _, tm := range testimonials {
		r.testimonials[tm.ID] = tm
	}
	return r
}

func (r *fakeTestimonialRepo) Create(db *gorm.DB, testimonial *models.Testimonial) error {
	if testimonial.ID == "" {
		testimonial.ID = "testimonial-" + testimonial.Name
	}
	r.testimonials[testimonial.ID] = testimonial
	return nil
}

func (r *fakeTestimonialRepo) FindByID(db *gorm.DB, id string) (*models.Testimonial, error) {
	testimonial, ok := r.testimonials[id]
	if !ok {
		return nil, repositories.ErrTestimonialNotFound
	}
	return testimonial, nil
}

func (r *fakeTestimonialRepo) List(db *gorm.DB, filter repositories.TestimonialFilter) ([]models.Testimonial, int64, error) {
	r.lastFilter = filter
	var out []models.Testimonial
	for _, testimonial := range r.testimonials {
		if filter.Status != "" && string(testimonial.Status) != filter.Status {
			continue
		}
		if filter.FeaturedOnly && !testimonial.Featured {
			continue
		}
		out = append(out, *testimonial)
	}
	return out, int64(len(out)), nil
}

func (r *fakeTestimonialRepo) Update(db *gorm.DB, testimonial *models.Testimonial) error {
	r.testimonials[testimonial.ID] = testimonial
	return nil
}

func (r *fakeTestimonialRepo) Delete(db *gorm.DB, id string) error {
	if _, ok := r.testimonials[id]; !ok {
		return repositories.ErrTestimonialNotFound
	}
	delete(r.testimonials, id)
	return nil
}
