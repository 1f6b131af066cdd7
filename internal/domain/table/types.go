package table

type Status string

const (
	StatusAvailable    Status = "available"
	StatusOccupied     Status = "occupied"
	StatusReserved     Status = "reserved"
	StatusCleaning     Status = "cleaning"
	StatusOutOfService Status = "out_of_service"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusCleaning, StatusOutOfService:
		return true
	default:
		return false
	}
}
