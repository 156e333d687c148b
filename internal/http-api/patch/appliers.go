package patch

import (
	"fmt"

	"cinehub/internal/http-api/models"
)

// Protected paths per entity. The guard rejects any operation touching them
// before the appliers run.
var (
	UserProtected       = []string{"/email", "/password"}
	MovieProtected      = []string{"/id"}
	AssessmentProtected = []string{"/id", "/user", "/movie"}
	FriendshipProtected = []string{"/id", "/user", "/friend", "/since"}
)

// ApplyUser applies the operations in order to u. Callers hand in a copy of
// the stored entity; on any error the copy is discarded, so nothing partial
// is ever persisted.
func ApplyUser(u *models.User, ops []Operation) error {
	for _, op := range ops {
		var err error
		switch op.Path {
		case "/name":
			err = applyScalar(op, &u.Name)
		case "/country":
			err = applyPtr(op, &u.Country)
		case "/picture":
			err = applyPtr(op, &u.Picture)
		case "/birthday":
			err = applyDate(op, &u.Birthday)
		case "/birthday/day":
			err = applyPtr(op, &u.Birthday.Day)
		case "/birthday/month":
			err = applyPtr(op, &u.Birthday.Month)
		case "/birthday/year":
			err = applyPtr(op, &u.Birthday.Year)
		case "/roles":
			err = applyList(op, &u.Roles)
		case "/roles/-":
			err = applyAppend(op, &u.Roles)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownPath, op.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyMovie applies the operations in order to m (a copy, as with ApplyUser).
func ApplyMovie(m *models.Movie, ops []Operation) error {
	for _, op := range ops {
		var err error
		switch op.Path {
		case "/title":
			err = applyScalar(op, &m.Title)
		case "/overview":
			err = applyPtr(op, &m.Overview)
		case "/tagline":
			err = applyPtr(op, &m.Tagline)
		case "/collection":
			err = applyPtr(op, &m.Collection)
		case "/genres":
			err = applyList(op, &m.Genres)
		case "/genres/-":
			err = applyAppend(op, &m.Genres)
		case "/releaseDate":
			err = applyDate(op, &m.ReleaseDate)
		case "/releaseDate/day":
			err = applyPtr(op, &m.ReleaseDate.Day)
		case "/releaseDate/month":
			err = applyPtr(op, &m.ReleaseDate.Month)
		case "/releaseDate/year":
			err = applyPtr(op, &m.ReleaseDate.Year)
		case "/keywords":
			err = applyList(op, &m.Keywords)
		case "/keywords/-":
			err = applyAppend(op, &m.Keywords)
		case "/producers":
			err = applyList(op, &m.Producers)
		case "/producers/-":
			err = applyAppend(op, &m.Producers)
		case "/crew":
			err = applyList(op, &m.Crew)
		case "/crew/-":
			err = applyAppend(op, &m.Crew)
		case "/cast":
			err = applyList(op, &m.Cast)
		case "/cast/-":
			err = applyAppend(op, &m.Cast)
		case "/budget":
			err = applyPtr(op, &m.Budget)
		case "/status":
			err = applyPtr(op, &m.Status)
		case "/runtime":
			err = applyPtr(op, &m.Runtime)
		case "/revenue":
			err = applyPtr(op, &m.Revenue)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownPath, op.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyAssessment applies the operations in order to a. Rating bounds are
// checked by the service after the whole patch applied.
func ApplyAssessment(a *models.Assessment, ops []Operation) error {
	for _, op := range ops {
		var err error
		switch op.Path {
		case "/rating":
			err = applyPtr(op, &a.Rating)
		case "/comment":
			err = applyPtr(op, &a.Comment)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownPath, op.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ApplyFriendship applies the operations in order to f. Only the confirmed
// flag is patchable; the service stamps since when it flips to true.
func ApplyFriendship(f *models.Friendship, ops []Operation) error {
	for _, op := range ops {
		var err error
		switch op.Path {
		case "/confirmed":
			err = applyScalar(op, &f.Confirmed)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownPath, op.Path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// applyDate handles whole-date paths. A date with no parts counts as unset,
// so replace on it fails like any other absent path.
func applyDate(op Operation, field *models.Date) error {
	switch op.Op {
	case OpReplace:
		if field.IsZero() {
			return fmt.Errorf("%w: %s", ErrPathNotFound, op.Path)
		}
		value, err := decode[models.Date](op)
		if err != nil {
			return err
		}
		*field = value
		return nil
	case OpAdd:
		value, err := decode[models.Date](op)
		if err != nil {
			return err
		}
		*field = value
		return nil
	case OpRemove:
		*field = models.Date{}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOp, op.Op)
	}
}
