package entities

// Actor поставляется внешним Identity Service, read-only для этого сервиса.
type Actor struct {
	ID   string
	Role RoleType
}

type RoleType string

const (
	RoleFarmer           RoleType = "farmer"
	RoleTransporter      RoleType = "transporter"
	RoleWarehouseManager RoleType = "warehouse_manager"
	RoleAdmin            RoleType = "admin"
)

func (r RoleType) String() string {
	return string(r)
}
