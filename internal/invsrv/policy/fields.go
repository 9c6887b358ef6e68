package policy

// Field policies for the updatable resources. Identifier and bookkeeping
// fields are read-only; codes that anchor a row's identity are required.

// ComponentFields governs component update payloads.
var ComponentFields = FieldPolicy{
	"id":        ReadOnly,
	"kind":      ReadOnly,
	"version":   ReadOnly,
	"createdAt": ReadOnly,
	"updatedAt": ReadOnly,

	"name":       Required,
	"typeCode":   Required,
	"statusCode": Required,

	"natureCode":   AdminNullable,
	"parentId":     AdminNullable,
	"locationId":   AdminNullable,
	"serialNumber": AdminNullable,

	"description":     UserWritable,
	"manufacturer":    UserWritable,
	"model":           UserWritable,
	"partNumber":      UserWritable,
	"attrs":           UserWritable,
	"purchaseDate":    UserWritable,
	"warrantyUntil":   UserWritable,
	"nextMaintenance": UserWritable,
}

// PortFields governs port update payloads.
var PortFields = FieldPolicy{
	"id":          ReadOnly,
	"componentId": ReadOnly,
	"kind":        ReadOnly,
	"version":     ReadOnly,
	"createdAt":   ReadOnly,
	"updatedAt":   ReadOnly,

	"portNumber": Required,

	"label":             UserWritable,
	"adminEnabled":      UserWritable,
	"linkUp":            UserWritable,
	"speedMbps":         UserWritable,
	"maxSpeedMbps":      UserWritable,
	"fullDuplex":        UserWritable,
	"autoNegotiation":   UserWritable,
	"poeEnabled":        UserWritable,
	"cableLengthMeters": UserWritable,
	"fiberType":         UserWritable,
	"wavelengthNm":      UserWritable,
	"txPowerDbm":        UserWritable,
	"rxPowerDbm":        UserWritable,
	"opticalLossDb":     UserWritable,
	"connectorType":     UserWritable,
}

// InstallationFields governs installation update payloads. Removal stamps
// are server-owned and written by status transitions only.
var InstallationFields = FieldPolicy{
	"id":                ReadOnly,
	"installedItemType": ReadOnly,
	"installedItemId":   ReadOnly,
	"statusCode":        ReadOnly,
	"removedAt":         ReadOnly,
	"removedBy":         ReadOnly,
	"version":           ReadOnly,
	"createdAt":         ReadOnly,
	"updatedAt":         ReadOnly,

	"locationId": Required,

	"componentId":    AdminNullable,
	"rackPosition":   AdminNullable,
	"rackUnitHeight": AdminNullable,

	"positionDescription": UserWritable,
	"installedAt":         UserWritable,
	"installedBy":         UserWritable,
	"notes":               UserWritable,
	"cableManagement":     UserWritable,
}

// LocationFields governs location update payloads.
var LocationFields = FieldPolicy{
	"id":        ReadOnly,
	"version":   ReadOnly,
	"createdAt": ReadOnly,
	"updatedAt": ReadOnly,

	"name":     Required,
	"typeCode": Required,

	"parentId":           AdminNullable,
	"availableRackUnits": AdminNullable,
	"maxChildrenCount":   AdminNullable,
	"maxEquipmentCount":  AdminNullable,

	"description":           UserWritable,
	"address":               UserWritable,
	"floor":                 UserWritable,
	"room":                  UserWritable,
	"latitude":              UserWritable,
	"longitude":             UserWritable,
	"minTemperatureCelsius": UserWritable,
	"maxTemperatureCelsius": UserWritable,
	"minHumidityPercent":    UserWritable,
	"maxHumidityPercent":    UserWritable,
	"powerCapacityWatts":    UserWritable,
	"hasUps":                UserWritable,
	"hasGenerator":          UserWritable,
}

// CatalogEntryFields governs updates to any catalog row. Capability flags
// reshape the type system, so clearing them is an administrative act.
var CatalogEntryFields = FieldPolicy{
	"id":        ReadOnly,
	"code":      ReadOnly,
	"createdAt": ReadOnly,
	"updatedAt": ReadOnly,

	"displayName": Required,

	"active":     AdminNullable,
	"sortOrder":  AdminNullable,
	"colorClass": AdminNullable,
	"iconClass":  AdminNullable,

	"description": UserWritable,
	"properties":  UserWritable,
}
