package repositories

import "gorm.io/gorm"

// exists reports whether a row of model's table has the given primary key.
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// replaceRow overwrites every column of row except the primary key and the
// omitted associations. It never inserts: when no row with id is left it
// returns notFound.
func replaceRow(tx *gorm.DB, row, model interface{}, id uint, notFound error, omit ...string) error {
	res := tx.Model(row).Select("*").Omit(append([]string{"ID"}, omit...)...).Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL counts changed rows, so an update that rewrites equal values
	// also reports zero.
	ok, err := exists(tx, model, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
