package entity

// Studio is a movie studio. Studio names are globally unique; the studio
// owns the join to its directors (director.studio_id).
type Studio struct {
	ID          int64
	StudioName  string
	FoundedYear int

	Directors []*Director
}

// AddDirector appends d to the studio's director list and sets the
// inverse studio reference.
func (s *Studio) AddDirector(d *Director) {
	id := s.ID
	d.StudioID = &id
	s.Directors = append(s.Directors, d)
}
