package models

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"
