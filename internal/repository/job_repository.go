package repository

import (
	"strings"

	"github.com/ardiansyahrp/jobhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

// JobFilter is the explicit filter set for listings. Title and Location are
// case-insensitive substring matches, Type and Status exact, Skills an
// any-of intersection against the serialized skills list.
type JobFilter struct {
	Title     string
	Location  string
	Type      string
	Status    string
	CompanyID uuid.UUID
	Skills    []string
}

func (r *JobRepository) Create(job *model.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Job{}, "id = ?", id).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.Job, error) {
	var job model.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	return &job, err
}

func (r *JobRepository) applyFilter(q *gorm.DB, f JobFilter) *gorm.DB {
	if f.Title != "" {
		q = q.Where("lower(title) LIKE ?", "%"+strings.ToLower(f.Title)+"%")
	}
	if f.Location != "" {
		q = q.Where("lower(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CompanyID != uuid.Nil {
		q = q.Where("company_id = ?", f.CompanyID)
	}
	if len(f.Skills) > 0 {
		// skills is stored as a JSON array; match any quoted entry.
		conds := make([]string, 0, len(f.Skills))
		args := make([]any, 0, len(f.Skills))
		for _, s := range f.Skills {
			conds = append(conds, "lower(skills) LIKE ?")
			args = append(args, `%"`+strings.ToLower(s)+`"%`)
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}
	return q
}

// List returns a page of jobs matching the filter, newest first, with the
// owning company preloaded.
func (r *JobRepository) List(f JobFilter, page, limit int) ([]model.Job, int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.Job{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []model.Job
	err := r.applyFilter(r.db.Preload("Company"), f).
		Order("posted_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	return jobs, total, err
}

// Search ranks active jobs by where the term matches: title counts most,
// then skills, description and location. Ties break on recency.
func (r *JobRepository) Search(term string, page, limit int) ([]model.Job, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	match := `status = 'active' AND (lower(title) LIKE ? OR lower(skills) LIKE ? OR lower(description) LIKE ? OR lower(location) LIKE ?)`

	var total int64
	if err := r.db.Model(&model.Job{}).
		Where(match, pattern, pattern, pattern, pattern).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	relevance := `(CASE WHEN lower(title) LIKE ? THEN 4 ELSE 0 END
		+ CASE WHEN lower(skills) LIKE ? THEN 3 ELSE 0 END
		+ CASE WHEN lower(description) LIKE ? THEN 2 ELSE 0 END
		+ CASE WHEN lower(location) LIKE ? THEN 1 ELSE 0 END)`

	var jobs []model.Job
	err := r.db.Raw(
		`SELECT * FROM jobs WHERE `+match+` ORDER BY `+relevance+` DESC, posted_at DESC LIMIT ? OFFSET ?`,
		pattern, pattern, pattern, pattern,
		pattern, pattern, pattern, pattern,
		limit, (page-1)*limit,
	).Scan(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachCompanies(jobs); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// attachCompanies fills in Company for rows loaded through Raw, where
// Preload is unavailable, keeping the relevance order intact.
func (r *JobRepository) attachCompanies(jobs []model.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(jobs))
	for i := range jobs {
		ids = append(ids, jobs[i].CompanyID)
	}
	var companies []model.Company
	if err := r.db.Where("id IN ?", ids).Find(&companies).Error; err != nil {
		return err
	}
	byID := make(map[uuid.UUID]model.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	for i := range jobs {
		jobs[i].Company = byID[jobs[i].CompanyID]
	}
	return nil
}
