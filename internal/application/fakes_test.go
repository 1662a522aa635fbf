package application

import (
	"time"

	"github.com/mvargas/portfolio-cms-api/internal/domain/entity"
)

// In-memory repositories for service tests. They honor the same contracts as
// the Postgres implementations: lookups return (nil, nil) for missing or
// soft-deleted rows, Save assigns ids, Delete flips the active flag.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || !u.IsActive {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Save(u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeProfileRepo struct {
	nextID   int64
	profiles map[int64]*entity.Profile // keyed by profile id
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[int64]*entity.Profile{}}
}

func (r *fakeProfileRepo) GetByUserID(userID int64) (*entity.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) Save(p *entity.Profile) error {
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) Update(p *entity.Profile) error {
	cp := *p
	r.profiles[p.ID] = &cp
	return nil
}

type fakeWorkExperienceRepo struct {
	nextID int64
	items  map[int64]*entity.WorkExperience
}

func newFakeWorkExperienceRepo() *fakeWorkExperienceRepo {
	return &fakeWorkExperienceRepo{items: map[int64]*entity.WorkExperience{}}
}

func (r *fakeWorkExperienceRepo) GetByID(id int64) (*entity.WorkExperience, error) {
	w, ok := r.items[id]
	if !ok || !w.IsActive {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWorkExperienceRepo) GetAllByProfileID(profileID int64) ([]*entity.WorkExperience, error) {
	var out []*entity.WorkExperience
	for _, w := range r.items {
		if w.ProfileID == profileID && w.IsActive {
			cp := *w
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeWorkExperienceRepo) Save(w *entity.WorkExperience) error {
	r.nextID++
	w.ID = r.nextID
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *fakeWorkExperienceRepo) Update(w *entity.WorkExperience) error {
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *fakeWorkExperienceRepo) Delete(id, deletedBy int64) (bool, error) {
	w, ok := r.items[id]
	if !ok || !w.IsActive {
		return false, nil
	}
	w.IsActive = false
	w.UpdatedBy = deletedBy
	return true, nil
}

type fakeProjectRepo struct {
	nextID int64
	items  map[int64]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: map[int64]*entity.Project{}}
}

func (r *fakeProjectRepo) GetByID(id int64) (*entity.Project, error) {
	p, ok := r.items[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) GetAllByProfileID(profileID int64) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.items {
		if p.ProfileID == profileID && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) GetFeaturedByProfileID(profileID int64) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.items {
		if p.ProfileID == profileID && p.Featured && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Save(p *entity.Project) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Delete(id, deletedBy int64) (bool, error) {
	p, ok := r.items[id]
	if !ok || !p.IsActive {
		return false, nil
	}
	p.IsActive = false
	p.UpdatedBy = deletedBy
	return true, nil
}

type fakeProjectTechRepo struct {
	nextID int64
	items  map[int64]*entity.ProjectTech
}

func newFakeProjectTechRepo() *fakeProjectTechRepo {
	return &fakeProjectTechRepo{items: map[int64]*entity.ProjectTech{}}
}

func (r *fakeProjectTechRepo) GetByProjectID(projectID int64) ([]*entity.ProjectTech, error) {
	var out []*entity.ProjectTech
	for _, pt := range r.items {
		if pt.ProjectID == projectID && pt.IsActive {
			cp := *pt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectTechRepo) Save(pt *entity.ProjectTech) error {
	r.nextID++
	pt.ID = r.nextID
	cp := *pt
	r.items[pt.ID] = &cp
	return nil
}

func (r *fakeProjectTechRepo) DeleteByProjectID(projectID, deletedBy int64) error {
	for _, pt := range r.items {
		if pt.ProjectID == projectID && pt.IsActive {
			pt.IsActive = false
			pt.UpdatedBy = deletedBy
		}
	}
	return nil
}

type fakeProjectPreviewRepo struct {
	nextID int64
	items  map[int64]*entity.ProjectPreview
}

func newFakeProjectPreviewRepo() *fakeProjectPreviewRepo {
	return &fakeProjectPreviewRepo{items: map[int64]*entity.ProjectPreview{}}
}

func (r *fakeProjectPreviewRepo) GetByProjectID(projectID int64) ([]*entity.ProjectPreview, error) {
	var out []*entity.ProjectPreview
	for _, pv := range r.items {
		if pv.ProjectID == projectID && pv.IsActive {
			cp := *pv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProjectPreviewRepo) Save(pv *entity.ProjectPreview) error {
	r.nextID++
	pv.ID = r.nextID
	cp := *pv
	r.items[pv.ID] = &cp
	return nil
}

func (r *fakeProjectPreviewRepo) Delete(id, deletedBy int64) (bool, error) {
	pv, ok := r.items[id]
	if !ok || !pv.IsActive {
		return false, nil
	}
	pv.IsActive = false
	pv.UpdatedBy = deletedBy
	return true, nil
}

type fakeTechnologyRepo struct {
	nextID int64
	items  map[int64]*entity.Technology
}

func newFakeTechnologyRepo() *fakeTechnologyRepo {
	return &fakeTechnologyRepo{items: map[int64]*entity.Technology{}}
}

func (r *fakeTechnologyRepo) GetByID(id int64) (*entity.Technology, error) {
	tt, ok := r.items[id]
	if !ok || !tt.IsActive {
		return nil, nil
	}
	cp := *tt
	return &cp, nil
}

func (r *fakeTechnologyRepo) GetAllByProfileID(profileID int64) ([]*entity.Technology, error) {
	var out []*entity.Technology
	for _, tt := range r.items {
		if tt.ProfileID == profileID && tt.IsActive {
			cp := *tt
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTechnologyRepo) Save(tt *entity.Technology) error {
	r.nextID++
	tt.ID = r.nextID
	cp := *tt
	r.items[tt.ID] = &cp
	return nil
}

func (r *fakeTechnologyRepo) Update(tt *entity.Technology) error {
	cp := *tt
	r.items[tt.ID] = &cp
	return nil
}

func (r *fakeTechnologyRepo) Delete(id, deletedBy int64) (bool, error) {
	tt, ok := r.items[id]
	if !ok || !tt.IsActive {
		return false, nil
	}
	tt.IsActive = false
	tt.UpdatedBy = deletedBy
	return true, nil
}

type fakeClientRepo struct {
	nextID int64
	items  map[int64]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{items: map[int64]*entity.Client{}}
}

func (r *fakeClientRepo) GetByID(id int64) (*entity.Client, error) {
	c, ok := r.items[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetAllByProfileID(profileID int64) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.items {
		if c.ProfileID == profileID && c.IsActive {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Save(c *entity.Client) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(id, deletedBy int64) (bool, error) {
	c, ok := r.items[id]
	if !ok || !c.IsActive {
		return false, nil
	}
	c.IsActive = false
	c.UpdatedBy = deletedBy
	return true, nil
}

type fakeSocialRepo struct {
	nextID int64
	items  map[int64]*entity.Social
}

func newFakeSocialRepo() *fakeSocialRepo {
	return &fakeSocialRepo{items: map[int64]*entity.Social{}}
}

func (r *fakeSocialRepo) GetByID(id int64) (*entity.Social, error) {
	s, ok := r.items[id]
	if !ok || !s.IsActive {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSocialRepo) GetAllByProfileID(profileID int64) ([]*entity.Social, error) {
	var out []*entity.Social
	for _, s := range r.items {
		if s.ProfileID == profileID && s.IsActive {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSocialRepo) Save(s *entity.Social) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSocialRepo) Update(s *entity.Social) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSocialRepo) Delete(id, deletedBy int64) (bool, error) {
	s, ok := r.items[id]
	if !ok || !s.IsActive {
		return false, nil
	}
	s.IsActive = false
	s.UpdatedBy = deletedBy
	return true, nil
}
