package web

import (
	"net/url"

	"parking-cli/pkg/models"
)

// Parking is the subset of the API client the forms drive.
type Parking interface {
	RegisterEntry(model, plate string) (models.Confirmation, error)
	GetStayTime(plate string) (*models.StayTime, error)
	RegisterExit(plate string) (models.Confirmation, error)
	CheckPresence(plate string) (*models.Presence, error)
	UpdateVehicle(plate, newModel string) (models.Confirmation, error)
	CancelRegistration(plate string) (models.Confirmation, error)
}

// BindParking attaches one submit callback per form. Field values are
// forwarded unchanged, blanks included.
func BindParking(s *Server, api Parking) {
	s.Bind(EntryForm, func(v url.Values) Result {
		if _, err := api.RegisterEntry(v.Get("entryModel"), v.Get("entryPlate")); err != nil {
			return Failure("Error registering entry", err)
		}
		return Success("Entry registered successfully!")
	})

	s.Bind(TimeForm, func(v url.Values) Result {
		st, err := api.GetStayTime(v.Get("timePlate"))
		if err != nil {
			return Failure("Failed to query stay time", err)
		}
		return Success("Parked time: %.2f minutes", st.ParkedTime)
	})

	s.Bind(ExitForm, func(v url.Values) Result {
		if _, err := api.RegisterExit(v.Get("exitPlate")); err != nil {
			return Failure("Error registering exit", err)
		}
		return Success("Exit registered successfully!")
	})

	s.Bind(CheckForm, func(v url.Values) Result {
		p, err := api.CheckPresence(v.Get("checkPlate"))
		if err != nil {
			return Failure("Error checking presence", err)
		}
		return Success("Is the vehicle in the parking lot? %s", YesNo(p.Present()))
	})

	s.Bind(UpdateForm, func(v url.Values) Result {
		if _, err := api.UpdateVehicle(v.Get("updatePlate"), v.Get("updateModel")); err != nil {
			return Failure("Error updating vehicle", err)
		}
		return Success("Vehicle data updated successfully!")
	})

	s.Bind(CancelForm, func(v url.Values) Result {
		if _, err := api.CancelRegistration(v.Get("cancelPlate")); err != nil {
			return Failure("Error removing registration", err)
		}
		return Success("Registration removed successfully!")
	})
}

func YesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
