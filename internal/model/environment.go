package model

// Environment is the deployment stage from config.
type Environment string

// EnvironmentProduction turns on Secure session cookies.
const EnvironmentProduction Environment = "production"
