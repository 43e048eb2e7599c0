// Package home manages the ~/.plugforge/ directory: path resolution with the
// PLUGFORGE_HOME override, first-run layout creation (config file and the user
// templates directory), and the health checks behind "plugforge doctor".
package home
