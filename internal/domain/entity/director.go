package entity

// Director is a person who directs movies. Director owns the association
// with its movies; every movie in Movies must point back to this director.
type Director struct {
	ID int64
	Person

	OscarCount int

	// Movies is the list of movies directed, in insertion order.
	Movies []*Movie

	// StudioID is the inverse side of the studio join; nil when the
	// director is not attached to a studio.
	StudioID *int64
}

// LinkMovies sets the back-reference of every movie in Movies to d.
// Mappers leave back-references unset; services call this after mapping.
func (d *Director) LinkMovies() {
	for _, m := range d.Movies {
		m.Director = d
		id := d.ID
		m.DirectorID = &id
	}
}

// AddMovie appends m to the director's movie list and fixes both
// directions of the relation.
func (d *Director) AddMovie(m *Movie) {
	m.Director = d
	id := d.ID
	m.DirectorID = &id
	d.Movies = append(d.Movies, m)
}
