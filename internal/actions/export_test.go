package actions

// OpenTrackedFile exposes openTrackedFile to the external test package
var OpenTrackedFile = openTrackedFile
