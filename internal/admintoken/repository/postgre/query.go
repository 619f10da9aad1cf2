package postgres

const regionsByUserQuery = `SELECT region_id AS region FROM regions__admin_users WHERE user_id = $1`

type regionRow struct {
	Region int64 `boil:"region"`
}
