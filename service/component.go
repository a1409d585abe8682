package service

import (
	"dashcomposer/db"
	"dashcomposer/models"
	"dashcomposer/validation"
)

// ComponentService owns the persisted component descriptors.
type ComponentService struct {
	db *db.DB
}

func NewComponentService(database *db.DB) *ComponentService {
	return &ComponentService{db: database}
}

func (s *ComponentService) Create(req models.ComponentCreateRequest) (*models.Component, error) {
	if err := validateComponent(req.Name, req.ComponentType, req.DataSource, req.Interval); err != nil {
		return nil, err
	}

	component := models.Component{
		Name:          req.Name,
		ComponentType: req.ComponentType,
		Query:         req.Query,
		Fields:        models.ToJSONMap(req.Fields),
		Interval:      req.Interval,
		DataSource:    req.DataSource,
		Description:   req.Description,
	}
	if err := s.db.CreateComponent(&component); err != nil {
		return nil, err
	}
	return &component, nil
}

func (s *ComponentService) Get(id uint) (*models.Component, error) {
	return s.db.GetComponent(id)
}

func (s *ComponentService) List(skip, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.db.ListComponents(skip, limit)
}

// Update applies a partial update; only fields present in the request
// are validated and written.
func (s *ComponentService) Update(id uint, req models.ComponentUpdateRequest) (*models.Component, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		if err := validation.Name(*req.Name); err != nil {
			return nil, err
		}
		updates["name"] = *req.Name
	}
	if req.ComponentType != nil {
		if err := validation.ComponentType(*req.ComponentType); err != nil {
			return nil, err
		}
		updates["component_type"] = *req.ComponentType
	}
	if req.Query != nil {
		updates["query"] = *req.Query
	}
	if req.Fields != nil {
		updates["fields"] = models.ToJSONMap(req.Fields)
	}
	if req.Interval != nil {
		if err := validation.Interval(*req.Interval); err != nil {
			return nil, err
		}
		updates["interval"] = *req.Interval
	}
	if req.DataSource != nil {
		if err := validation.DataSource(*req.DataSource); err != nil {
			return nil, err
		}
		updates["data_source"] = *req.DataSource
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	return s.db.UpdateComponent(id, updates)
}

func (s *ComponentService) Delete(id uint) error {
	return s.db.DeleteComponent(id)
}

func (s *ComponentService) ByType(componentType string) ([]models.Component, error) {
	return s.db.ComponentsByType(componentType)
}

func (s *ComponentService) BySource(dataSource string) ([]models.Component, error) {
	return s.db.ComponentsBySource(dataSource)
}

func (s *ComponentService) ByInterval(interval string) ([]models.Component, error) {
	return s.db.ComponentsByInterval(interval)
}

func (s *ComponentService) Search(term string, skip, limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.db.SearchComponents(term, skip, limit)
}

func (s *ComponentService) Recent(limit int) ([]models.Component, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.db.RecentComponents(limit)
}

func (s *ComponentService) Statistics() (models.ComponentStatistics, error) {
	total, err := s.db.CountComponents()
	if err != nil {
		return models.ComponentStatistics{}, err
	}

	stats := models.ComponentStatistics{
		TotalComponents: total,
		ByType:          map[string]int64{},
		ByDataSource:    map[string]int64{},
	}

	for _, componentType := range []string{"chart", "table", "metric"} {
		count, err := s.db.CountComponentsByType(componentType)
		if err != nil {
			return models.ComponentStatistics{}, err
		}
		stats.ByType[componentType] = count
	}
	for _, dataSource := range []string{"mysql", "mongodb", "csv"} {
		count, err := s.db.CountComponentsBySource(dataSource)
		if err != nil {
			return models.ComponentStatistics{}, err
		}
		stats.ByDataSource[dataSource] = count
	}
	return stats, nil
}

func validateComponent(name, componentType, dataSource, interval string) error {
	if err := validation.Name(name); err != nil {
		return err
	}
	if err := validation.ComponentType(componentType); err != nil {
		return err
	}
	if err := validation.DataSource(dataSource); err != nil {
		return err
	}
	return validation.Interval(interval)
}
