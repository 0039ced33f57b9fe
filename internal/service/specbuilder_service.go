// FILE: internal/service/specbuilder_service.go
package service

import "salesdesk-be/internal/dto"

// specBuilderGroups is the static option catalog behind the solution design
// form. Checkbox state never reaches the server, so a dataset is all there is.
var specBuilderGroups = []dto.SpecBuilderGroup{
	{
		Title: "Solution Design",
		Options: []string{
			"Central Server",
			"All-in-One Appliance",
			"Upgrade of existing installation",
			"Hardware delivered with the solution",
		},
	},
	{
		Title: "Type of Equipment",
		Options: []string{
			"Support for Infusion Pumps (Hybrid)",
			"Support for Spot Check Devices",
			"Support for Mechanical Ventilators",
			"Support for Anesthesia Machines",
			"Support for Ultrasound Machines",
			"Support for Video Cameras (RTSP Stream)",
		},
	},
	{
		Title: "Clinical Features",
		Options: []string{
			"24h ECG summary",
			"AF Summary",
			"Ventricular Arrhythmia Summary",
			"Oxygenation Summary",
			"Continuous NIBP analysis",
			"History 12 ECG Analysis",
			"HRV Summary",
			"Early Warning Score",
		},
	},
	{
		Title: "Operational",
		Options: []string{
			"Support Central Viewer",
			"HIS Patient Sync",
			"IoT Data Output and Remote Maintenance",
			"Security whitelist solution",
		},
	},
	{
		Title: "Integrated Gateway",
		Options: []string{
			"ADT + Result + Doc + ALM",
			"ADT + Result + Doc + ALM + FD",
			"ADT + Result + Doc + ALM + Order",
			"ADT + Result + Doc + ALM + FD + Order",
		},
	},
	{
		Title: "Standalone Gateway",
		Options: []string{
			"Support ADT",
			"Support Results",
			"Support Alarms",
			"Support Document Sharing",
			"High Resolution Waveform",
			"Order Synchronization",
			"History Data Forward",
		},
	},
	{
		Title: "Mobile Viewer Server",
		Options: []string{
			"Mobile Viewer Server - 64 beds",
			"Mobile Viewer Server - 200 beds",
			"Mobile Viewer Server - 600 beds",
			"Mobile Viewer Server - 1200 beds",
		},
	},
	{
		Title: "Alarm Server",
		Options: []string{
			"Alarm Server - 8 beds",
			"Alarm Server - 16 beds",
			"Alarm Server - 32 beds",
			"Alarm Server - 64 beds",
			"Alarm Server - 128 beds",
			"Alarm Server - 400 beds",
			"Alarm Server - 600 beds",
			"Alarm Server - 1200 beds",
		},
	},
	{
		Title: "Web Viewer Server",
		Options: []string{
			"Web Server - 16 clients",
			"Web Server - 64 clients",
			"Web Server - 128 clients",
		},
	},
	{
		Title: "WorkStation",
		Options: []string{
			"WorkStation - 8 beds",
			"WorkStation - 16 beds",
			"WorkStation - 32 beds",
			"WorkStation - 64 beds",
		},
	},
	{
		Title: "ViewStation",
		Options: []string{
			"ViewStation - 8 beds",
			"ViewStation - 16 beds",
			"ViewStation - 32 beds",
			"ViewStation - 64 beds",
		},
	},
	{
		Title: "Special Configurations",
		Options: []string{
			"WorkStation Lite - 8 beds",
			"Redundant Central Station - Cluster",
			"Pumps-only Central Station",
			"Central Station Server - 4 beds",
			"Central Station Server - 1 bed",
		},
	},
}

// SpecBuilderGroups returns a copy so callers cannot mutate the dataset.
func SpecBuilderGroups() []dto.SpecBuilderGroup {
	out := make([]dto.SpecBuilderGroup, len(specBuilderGroups))
	copy(out, specBuilderGroups)
	return out
}
