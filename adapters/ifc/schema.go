package ifc

import "strings"

// productTypes lists the IfcProduct subtypes of IFC2X3, IFC4 and IFC4X3
// under their canonical spelling, abstract supertypes included. STEP files
// write type names upper case.
var productTypes = []string{
	// abstract supertypes
	"IfcProduct", "IfcElement", "IfcBuildingElement", "IfcBuiltElement",
	"IfcElementComponent", "IfcBuildingElementComponent", "IfcFeatureElement",
	"IfcFeatureElementAddition", "IfcFeatureElementSubtraction",
	"IfcSpatialElement", "IfcSpatialStructureElement", "IfcPositioningElement",
	"IfcLinearPositioningElement", "IfcReinforcingElement",
	"IfcDeepFoundation", "IfcGeotechnicalElement", "IfcGeotechnicalStratum",
	"IfcFacility", "IfcFacilityPart",

	// spatial structure
	"IfcSite", "IfcBuilding", "IfcBuildingStorey", "IfcSpace",
	"IfcExternalSpatialElement", "IfcSpatialZone",
	"IfcBridge", "IfcBridgePart", "IfcRoad", "IfcRoadPart", "IfcRailway",
	"IfcRailwayPart", "IfcMarineFacility", "IfcMarinePart", "IfcFacilityPartCommon",

	// building elements
	"IfcBeam", "IfcBeamStandardCase", "IfcBearing", "IfcBuildingElementProxy",
	"IfcCaissonFoundation", "IfcChimney", "IfcColumn", "IfcColumnStandardCase",
	"IfcCourse", "IfcCovering", "IfcCurtainWall", "IfcDoor", "IfcDoorStandardCase",
	"IfcEarthworksElement", "IfcEarthworksFill", "IfcFooting", "IfcKerb",
	"IfcMember", "IfcMemberStandardCase", "IfcMooringDevice",
	"IfcNavigationElement", "IfcPavement", "IfcPile", "IfcPlate",
	"IfcPlateStandardCase", "IfcRail", "IfcRailing", "IfcRamp", "IfcRampFlight",
	"IfcReinforcedSoil", "IfcRoof", "IfcShadingDevice", "IfcSlab",
	"IfcSlabElementedCase", "IfcSlabStandardCase", "IfcStair", "IfcStairFlight",
	"IfcTrackElement", "IfcWall", "IfcWallElementedCase", "IfcWallStandardCase",
	"IfcWindow", "IfcWindowStandardCase",

	// element components and assemblies
	"IfcBuildingElementPart", "IfcDiscreteAccessory", "IfcElementAssembly",
	"IfcFastener", "IfcImpactProtectionDevice", "IfcMechanicalFastener",
	"IfcReinforcingBar", "IfcReinforcingMesh", "IfcSign", "IfcTendon",
	"IfcTendonAnchor", "IfcTendonConduit", "IfcVibrationDamper",
	"IfcVibrationIsolator",

	// features
	"IfcOpeningElement", "IfcOpeningStandardCase", "IfcProjectionElement",
	"IfcVoidingFeature", "IfcSurfaceFeature", "IfcEarthworksCut",
	"IfcEdgeFeature", "IfcChamferEdgeFeature", "IfcRoundedEdgeFeature",

	// furnishing, civil and other elements
	"IfcFurnishingElement", "IfcFurniture", "IfcSystemFurnitureElement",
	"IfcCivilElement", "IfcGeographicElement", "IfcTransportElement",
	"IfcTransportationDevice", "IfcVehicle", "IfcVirtualElement",
	"IfcEquipmentElement", "IfcElectricalElement", "IfcElectricDistributionPoint",

	// geotechnics
	"IfcBorehole", "IfcGeomodel", "IfcGeoslice", "IfcGeotechnicalAssembly",
	"IfcSolidStratum", "IfcVoidStratum", "IfcWaterStratum",

	// distribution supertypes
	"IfcDistributionElement", "IfcDistributionControlElement",
	"IfcDistributionFlowElement", "IfcDistributionChamberElement",
	"IfcEnergyConversionDevice", "IfcFlowController", "IfcFlowFitting",
	"IfcFlowMovingDevice", "IfcFlowSegment", "IfcFlowStorageDevice",
	"IfcFlowTerminal", "IfcFlowTreatmentDevice",

	// distribution control
	"IfcActuator", "IfcAlarm", "IfcController", "IfcFlowInstrument",
	"IfcProtectiveDeviceTrippingUnit", "IfcSensor", "IfcUnitaryControlElement",

	// energy conversion
	"IfcAirToAirHeatRecovery", "IfcBoiler", "IfcBurner", "IfcChiller", "IfcCoil",
	"IfcCondenser", "IfcCooledBeam", "IfcCoolingTower", "IfcElectricGenerator",
	"IfcElectricMotor", "IfcEngine", "IfcEvaporativeCooler", "IfcEvaporator",
	"IfcHeatExchanger", "IfcHumidifier", "IfcMotorConnection", "IfcSolarDevice",
	"IfcTransformer", "IfcTubeBundle", "IfcUnitaryEquipment",

	// flow controllers
	"IfcAirTerminalBox", "IfcDamper", "IfcDistributionBoard",
	"IfcElectricDistributionBoard", "IfcElectricTimeControl", "IfcFlowMeter",
	"IfcProtectiveDevice", "IfcSwitchingDevice", "IfcValve",

	// fittings and segments
	"IfcCableCarrierFitting", "IfcCableFitting", "IfcDuctFitting",
	"IfcJunctionBox", "IfcPipeFitting", "IfcCableCarrierSegment",
	"IfcCableSegment", "IfcConveyorSegment", "IfcDuctSegment", "IfcPipeSegment",

	// moving and storage devices
	"IfcCompressor", "IfcFan", "IfcPump", "IfcElectricFlowStorageDevice",
	"IfcElectricFlowTreatmentDevice", "IfcTank",

	// terminals
	"IfcAirTerminal", "IfcAudioVisualAppliance", "IfcCommunicationsAppliance",
	"IfcElectricAppliance", "IfcElectricHeater", "IfcFireSuppressionTerminal",
	"IfcGasTerminal", "IfcLamp", "IfcLightFixture", "IfcLiquidTerminal",
	"IfcMedicalDevice", "IfcMobileTelecommunicationsAppliance", "IfcOutlet",
	"IfcSanitaryTerminal", "IfcSignal", "IfcSpaceHeater", "IfcStackTerminal",
	"IfcWasteTerminal",

	// treatment devices
	"IfcDuctSilencer", "IfcFilter", "IfcInterceptor",

	// structural analysis items
	"IfcStructuralItem", "IfcStructuralMember", "IfcStructuralConnection",
	"IfcStructuralCurveMember", "IfcStructuralCurveMemberVarying",
	"IfcStructuralSurfaceMember", "IfcStructuralSurfaceMemberVarying",
	"IfcStructuralPointConnection", "IfcStructuralCurveConnection",
	"IfcStructuralSurfaceConnection",

	// structural activities
	"IfcStructuralActivity", "IfcStructuralAction", "IfcStructuralReaction",
	"IfcStructuralPointAction", "IfcStructuralCurveAction",
	"IfcStructuralLinearAction", "IfcStructuralLinearActionVarying",
	"IfcStructuralSurfaceAction", "IfcStructuralPlanarAction",
	"IfcStructuralPlanarActionVarying", "IfcStructuralPointReaction",
	"IfcStructuralCurveReaction", "IfcStructuralSurfaceReaction",

	// annotation, positioning and ports
	"IfcAnnotation", "IfcGrid", "IfcAlignment", "IfcReferent", "IfcPort",
	"IfcDistributionPort", "IfcProxy",
}

// resourceTypes lists the non-product entities and defined types that are
// common in exported files, so counts of every entity share one spelling
var resourceTypes = []string{
	// project, actors and context
	"IfcProject", "IfcProjectLibrary", "IfcOwnerHistory", "IfcPerson",
	"IfcOrganization", "IfcPersonAndOrganization", "IfcApplication",
	"IfcActorRole", "IfcActor", "IfcOccupant", "IfcPostalAddress",
	"IfcTelecomAddress", "IfcGeometricRepresentationContext",
	"IfcGeometricRepresentationSubContext", "IfcMapConversion", "IfcProjectedCRS",

	// units and measures
	"IfcUnitAssignment", "IfcNamedUnit", "IfcSIUnit", "IfcConversionBasedUnit",
	"IfcDerivedUnit", "IfcDerivedUnitElement", "IfcDimensionalExponents",
	"IfcMeasureWithUnit", "IfcMonetaryUnit", "IfcContextDependentUnit",
	"IfcLengthMeasure", "IfcPositiveLengthMeasure", "IfcAreaMeasure",
	"IfcVolumeMeasure", "IfcMassMeasure", "IfcCountMeasure",
	"IfcPlaneAngleMeasure", "IfcPositivePlaneAngleMeasure", "IfcRatioMeasure",
	"IfcPositiveRatioMeasure", "IfcNormalisedRatioMeasure", "IfcPowerMeasure",
	"IfcThermalTransmittanceMeasure", "IfcThermodynamicTemperatureMeasure",
	"IfcTimeMeasure", "IfcMonetaryMeasure", "IfcLabel", "IfcText",
	"IfcIdentifier", "IfcBoolean", "IfcLogical", "IfcReal", "IfcInteger",

	// points, directions and placements
	"IfcCartesianPoint", "IfcCartesianPointList2D", "IfcCartesianPointList3D",
	"IfcDirection", "IfcVector", "IfcAxis1Placement", "IfcAxis2Placement2D",
	"IfcAxis2Placement3D", "IfcLocalPlacement", "IfcGridPlacement",
	"IfcCartesianTransformationOperator2D", "IfcCartesianTransformationOperator3D",
	"IfcCartesianTransformationOperator3DnonUniform",

	// curves and surfaces
	"IfcPolyline", "IfcPolyLoop", "IfcLine", "IfcCircle", "IfcEllipse",
	"IfcTrimmedCurve", "IfcCompositeCurve", "IfcCompositeCurveSegment",
	"IfcIndexedPolyCurve", "IfcBSplineCurveWithKnots", "IfcPlane",
	"IfcCurveBoundedPlane", "IfcSurfaceOfLinearExtrusion", "IfcEdgeCurve",
	"IfcOrientedEdge", "IfcEdgeLoop", "IfcVertexPoint",

	// solids and meshes
	"IfcFace", "IfcFaceBound", "IfcFaceOuterBound", "IfcAdvancedFace",
	"IfcClosedShell", "IfcOpenShell", "IfcConnectedFaceSet", "IfcFacetedBrep",
	"IfcAdvancedBrep", "IfcShellBasedSurfaceModel", "IfcFaceBasedSurfaceModel",
	"IfcExtrudedAreaSolid", "IfcRevolvedAreaSolid", "IfcSweptDiskSolid",
	"IfcBooleanResult", "IfcBooleanClippingResult", "IfcHalfSpaceSolid",
	"IfcPolygonalBoundedHalfSpace", "IfcBoundingBox", "IfcTriangulatedFaceSet",
	"IfcPolygonalFaceSet", "IfcIndexedPolygonalFace", "IfcGeometricCurveSet",
	"IfcGeometricSet",

	// profiles
	"IfcRectangleProfileDef", "IfcRectangleHollowProfileDef",
	"IfcCircleProfileDef", "IfcCircleHollowProfileDef",
	"IfcArbitraryClosedProfileDef", "IfcArbitraryProfileDefWithVoids",
	"IfcIShapeProfileDef", "IfcLShapeProfileDef", "IfcUShapeProfileDef",
	"IfcTShapeProfileDef", "IfcCShapeProfileDef", "IfcZShapeProfileDef",
	"IfcDerivedProfileDef", "IfcCompositeProfileDef",

	// representations and presentation
	"IfcShapeRepresentation", "IfcProductDefinitionShape", "IfcMappedItem",
	"IfcRepresentationMap", "IfcStyledItem", "IfcStyledRepresentation",
	"IfcPresentationStyleAssignment", "IfcPresentationLayerAssignment",
	"IfcSurfaceStyle", "IfcSurfaceStyleRendering", "IfcSurfaceStyleShading",
	"IfcColourRgb", "IfcCurveStyle", "IfcFillAreaStyle", "IfcTextStyle",
	"IfcTextLiteralWithExtent", "IfcDraughtingPreDefinedColour",
	"IfcDraughtingPreDefinedCurveFont", "IfcMaterialDefinitionRepresentation",

	// materials
	"IfcMaterial", "IfcMaterialLayer", "IfcMaterialLayerSet",
	"IfcMaterialLayerSetUsage", "IfcMaterialList", "IfcMaterialProfile",
	"IfcMaterialProfileSet", "IfcMaterialProfileSetUsage",
	"IfcMaterialConstituent", "IfcMaterialConstituentSet", "IfcMaterialProperties",

	// properties and quantities
	"IfcPropertySet", "IfcPropertySingleValue", "IfcPropertyEnumeratedValue",
	"IfcPropertyEnumeration", "IfcPropertyListValue", "IfcPropertyBoundedValue",
	"IfcPropertyTableValue", "IfcComplexProperty", "IfcPropertySetTemplate",
	"IfcSimplePropertyTemplate", "IfcElementQuantity", "IfcQuantityLength",
	"IfcQuantityArea", "IfcQuantityVolume", "IfcQuantityCount",
	"IfcQuantityWeight", "IfcQuantityTime", "IfcDoorLiningProperties",
	"IfcDoorPanelProperties", "IfcWindowLiningProperties",
	"IfcWindowPanelProperties", "IfcDoorStyle", "IfcWindowStyle",

	// relationships
	"IfcRelAggregates", "IfcRelNests", "IfcRelDeclares",
	"IfcRelContainedInSpatialStructure", "IfcRelReferencedInSpatialStructure",
	"IfcRelDefinesByProperties", "IfcRelDefinesByType", "IfcRelDefinesByTemplate",
	"IfcRelAssociatesMaterial", "IfcRelAssociatesClassification",
	"IfcRelAssociatesDocument", "IfcRelAssociatesConstraint",
	"IfcRelVoidsElement", "IfcRelFillsElement", "IfcRelProjectsElement",
	"IfcRelSpaceBoundary", "IfcRelSpaceBoundary1stLevel",
	"IfcRelSpaceBoundary2ndLevel", "IfcRelConnectsElements",
	"IfcRelConnectsPathElements", "IfcRelConnectsPortToElement",
	"IfcRelConnectsPorts", "IfcRelConnectsStructuralMember",
	"IfcRelConnectsStructuralActivity", "IfcRelAssignsToGroup",
	"IfcRelAssignsToProduct", "IfcRelAssignsToControl", "IfcRelAssignsToProcess",
	"IfcRelServicesBuildings", "IfcRelCoversBldgElements", "IfcRelCoversSpaces",
	"IfcRelInterferesElements", "IfcRelSequence", "IfcRelFlowControlElements",
	"IfcConnectionSurfaceGeometry", "IfcConnectionCurveGeometry",

	// groups, systems and analysis models
	"IfcGroup", "IfcSystem", "IfcBuildingSystem", "IfcDistributionSystem",
	"IfcDistributionCircuit", "IfcZone", "IfcStructuralAnalysisModel",
	"IfcStructuralLoadGroup", "IfcStructuralLoadCase", "IfcStructuralResultGroup",
	"IfcStructuralLoadSingleForce", "IfcStructuralLoadLinearForce",
	"IfcStructuralLoadPlanarForce", "IfcBoundaryNodeCondition", "IfcGridAxis",
	"IfcVirtualGridIntersection",

	// classification, documents and scheduling
	"IfcClassification", "IfcClassificationReference", "IfcDocumentReference",
	"IfcDocumentInformation", "IfcExternalReferenceRelationship",
	"IfcLibraryInformation", "IfcLibraryReference", "IfcTask", "IfcTaskTime",
	"IfcWorkPlan", "IfcWorkSchedule", "IfcCostItem", "IfcCostSchedule",
	"IfcCostValue", "IfcTable", "IfcTableRow", "IfcIrregularTimeSeries",
	"IfcRegularTimeSeries", "IfcTimeSeriesValue", "IfcCalendarDate",
	"IfcLocalTime", "IfcDateAndTime", "IfcCoordinatedUniversalTimeOffset",
}

var productIndex = func() map[string]string {
	index := make(map[string]string, len(productTypes))
	for _, name := range productTypes {
		index[strings.ToUpper(name)] = name
	}
	return index
}()

// nameIndex spells every known entity, including the type objects
// (IfcWallType, IfcCoilType) that accompany products
var nameIndex = func() map[string]string {
	index := make(map[string]string, 2*len(productTypes)+len(resourceTypes))
	for _, name := range productTypes {
		index[strings.ToUpper(name)] = name
		index[strings.ToUpper(name)+"TYPE"] = name + "Type"
	}
	for _, name := range resourceTypes {
		index[strings.ToUpper(name)] = name
	}
	return index
}()

// IsProduct reports whether the upper-case STEP type name is an IfcProduct subtype
func IsProduct(stepType string) bool {
	_, ok := productIndex[strings.ToUpper(stepType)]
	return ok
}

// DisplayName returns the canonical CamelCase spelling of a known entity.
// Other names come back as declared, which for STEP files is upper case.
func DisplayName(stepType string) string {
	if name, ok := nameIndex[strings.ToUpper(stepType)]; ok {
		return name
	}
	return stepType
}
