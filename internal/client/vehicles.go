package client

import (
	"parking-cli/pkg/models"
)

// RegisterEntry records a vehicle arriving at the lot.
func (c *ParkingClient) RegisterEntry(model, plate string) (models.Confirmation, error) {
	payload := models.EntryPayload{
		Model: model,
		Plate: plate,
	}

	var conf models.Confirmation
	if err := c.send(OpCreate, "", payload, &conf); err != nil {
		return models.Confirmation{}, err
	}
	return conf, nil
}

// GetStayTime returns the minutes elapsed since the vehicle's entry.
func (c *ParkingClient) GetStayTime(plate string) (*models.StayTime, error) {
	var st models.StayTime
	if err := c.send(OpStayTime, plate, nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// RegisterExit closes the vehicle's open entry.
func (c *ParkingClient) RegisterExit(plate string) (models.Confirmation, error) {
	var conf models.Confirmation
	if err := c.send(OpExit, plate, nil, &conf); err != nil {
		return models.Confirmation{}, err
	}
	return conf, nil
}

// CheckPresence asks whether the vehicle is currently parked.
// Use Presence.Present on the result.
func (c *ParkingClient) CheckPresence(plate string) (*models.Presence, error) {
	var p models.Presence
	if err := c.send(OpVerify, plate, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateVehicle replaces the model stored for plate.
func (c *ParkingClient) UpdateVehicle(plate, newModel string) (models.Confirmation, error) {
	payload := models.UpdatePayload{
		Plate: plate,
		Model: newModel,
	}

	var conf models.Confirmation
	if err := c.send(OpUpdate, plate, payload, &conf); err != nil {
		return models.Confirmation{}, err
	}
	return conf, nil
}

// CancelRegistration deletes the vehicle's registration.
func (c *ParkingClient) CancelRegistration(plate string) (models.Confirmation, error) {
	var conf models.Confirmation
	if err := c.send(OpCancel, plate, nil, &conf); err != nil {
		return models.Confirmation{}, err
	}
	return conf, nil
}
