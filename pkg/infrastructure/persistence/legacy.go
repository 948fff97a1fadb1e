package persistence

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MigrateLegacy converts a browser-era document into the current shape.
// The old tool used numeric IDs generated from timestamps, stored fineness
// lists as strings, called unload entries "consumption", kept null
// placeholders for derived dates and serialized week anchors as full
// timestamps. Everything is rewritten in place with gjson/sjson so unknown
// extra fields survive untouched.
func MigrateLegacy(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("legacy document is not valid JSON")
	}

	out := raw
	var err error

	idFields := map[string][]string{
		"phases":           {"id"},
		"machines":         {"id"},
		"departments":      {"id"},
		"rawMaterials":     {"id"},
		"warehouseJournal": {"id", "materialId"},
		"articles":         {"id"},
		"productionPlan":   {"id", "articleId"},
		"users":            {"id"},
		"notifications":    {"id"},
		"holidays":         {"id"},
	}
	for key, fields := range idFields {
		out, err = stringifyIDs(out, key, fields)
		if err != nil {
			return nil, err
		}
	}

	out, err = migrateDepartments(out)
	if err != nil {
		return nil, err
	}
	out, err = migrateArticles(out)
	if err != nil {
		return nil, err
	}
	out, err = migrateJournal(out)
	if err != nil {
		return nil, err
	}
	out, err = migrateLots(out)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"currentDeliveryWeekStartDate", "currentWorkloadWeekStartDate"} {
		anchor := gjson.GetBytes(out, key)
		switch {
		case anchor.Type == gjson.Null:
			out, err = sjson.DeleteBytes(out, key)
		case anchor.Exists() && len(anchor.String()) > 10:
			// Full ISO timestamp from the browser's Date serialization.
			out, err = sjson.SetBytes(out, key, anchor.String()[:10])
		}
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// stringifyIDs rewrites numeric identifier fields of every element of the
// named top-level array as strings
func stringifyIDs(raw []byte, key string, fields []string) ([]byte, error) {
	var err error
	list := gjson.GetBytes(raw, key)
	if !list.IsArray() {
		return raw, nil
	}
	for i := range list.Array() {
		for _, field := range fields {
			path := key + "." + strconv.Itoa(i) + "." + field
			value := gjson.GetBytes(raw, path)
			if value.Type == gjson.Number {
				raw, err = sjson.SetBytes(raw, path, value.Raw)
				if err != nil {
					return nil, errors.Wrapf(err, "rewriting %s", path)
				}
			}
		}
	}
	return raw, nil
}

func migrateDepartments(raw []byte) ([]byte, error) {
	var err error
	list := gjson.GetBytes(raw, "departments")
	for i, dept := range list.Array() {
		base := "departments." + strconv.Itoa(i)

		// phaseIds: numeric -> string, absent -> empty
		phaseIDs := dept.Get("phaseIds")
		if !phaseIDs.Exists() {
			raw, err = sjson.SetBytes(raw, base+".phaseIds", []string{})
			if err != nil {
				return nil, err
			}
		} else {
			for j, pid := range phaseIDs.Array() {
				if pid.Type == gjson.Number {
					raw, err = sjson.SetBytes(raw, base+".phaseIds."+strconv.Itoa(j), pid.Raw)
					if err != nil {
						return nil, err
					}
				}
			}
		}

		// finenesses: stored as strings, current shape wants numbers
		for j, f := range dept.Get("finenesses").Array() {
			if f.Type == gjson.String {
				n, convErr := strconv.Atoi(f.String())
				if convErr != nil {
					return nil, errors.Wrapf(convErr, "department %s fineness %q", dept.Get("name").String(), f.String())
				}
				raw, err = sjson.SetBytes(raw, base+".finenesses."+strconv.Itoa(j), n)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return raw, nil
}

func migrateArticles(raw []byte) ([]byte, error) {
	var err error
	for i, article := range gjson.GetBytes(raw, "articles").Array() {
		base := "articles." + strconv.Itoa(i)
		for j, step := range article.Get("cycle").Array() {
			path := base + ".cycle." + strconv.Itoa(j) + ".phaseId"
			if step.Get("phaseId").Type == gjson.Number {
				raw, err = sjson.SetBytes(raw, path, step.Get("phaseId").Raw)
				if err != nil {
					return nil, err
				}
			}
		}
		for j, line := range article.Get("bom").Array() {
			path := base + ".bom." + strconv.Itoa(j) + ".materialId"
			if line.Get("materialId").Type == gjson.Number {
				raw, err = sjson.SetBytes(raw, path, line.Get("materialId").Raw)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return raw, nil
}

func migrateJournal(raw []byte) ([]byte, error) {
	var err error
	for i, entry := range gjson.GetBytes(raw, "warehouseJournal").Array() {
		if entry.Get("type").String() == "consumption" {
			raw, err = sjson.SetBytes(raw, "warehouseJournal."+strconv.Itoa(i)+".type", "unload")
			if err != nil {
				return nil, err
			}
		}
	}
	return raw, nil
}

func migrateLots(raw []byte) ([]byte, error) {
	var err error
	for i, lot := range gjson.GetBytes(raw, "productionPlan").Array() {
		base := "productionPlan." + strconv.Itoa(i)
		for _, field := range []string{"estimatedDeliveryDate", "deliveryDate", "suggestedStartDate"} {
			if lot.Get(field).Type == gjson.Null {
				raw, err = sjson.DeleteBytes(raw, base+"."+field)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	return raw, nil
}
