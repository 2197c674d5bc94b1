package ansi

import "github.com/prismkit/prism/convert"

// presetColors is the shared name table both palettes derive their escape
// codes from at construction time. Names follow the CSS color keywords,
// upper-snake-cased.
var presetColors = map[string]convert.RGB{
	// reds
	"MAROON":       {R: 128, G: 0, B: 0},
	"DARK_RED":     {R: 139, G: 0, B: 0},
	"BROWN":        {R: 165, G: 42, B: 42},
	"FIREBRICK":    {R: 178, G: 34, B: 34},
	"CRIMSON":      {R: 220, G: 20, B: 60},
	"RED":          {R: 255, G: 0, B: 0},
	"TOMATO":       {R: 255, G: 99, B: 71},
	"CORAL":        {R: 255, G: 127, B: 80},
	"INDIAN_RED":   {R: 205, G: 92, B: 92},
	"LIGHT_CORAL":  {R: 240, G: 128, B: 128},
	"DARK_SALMON":  {R: 233, G: 150, B: 122},
	"SALMON":       {R: 250, G: 128, B: 114},
	"LIGHT_SALMON": {R: 255, G: 160, B: 122},

	// oranges
	"ORANGE_RED":  {R: 255, G: 69, B: 0},
	"DARK_ORANGE": {R: 255, G: 140, B: 0},
	"ORANGE":      {R: 255, G: 165, B: 0},

	// yellows
	"GOLD":            {R: 255, G: 215, B: 0},
	"DARK_GOLDEN_ROD": {R: 184, G: 134, B: 11},
	"GOLDEN_ROD":      {R: 218, G: 165, B: 32},
	"PALE_GOLDEN_ROD": {R: 238, G: 232, B: 170},
	"DARK_KHAKI":      {R: 189, G: 183, B: 107},
	"KHAKI":           {R: 240, G: 230, B: 140},
	"OLIVE":           {R: 128, G: 128, B: 0},
	"YELLOW":          {R: 255, G: 255, B: 0},

	// greens
	"YELLOW_GREEN":        {R: 154, G: 205, B: 50},
	"DARK_OLIVE_GREEN":    {R: 85, G: 107, B: 47},
	"OLIVE_DRAB":          {R: 107, G: 142, B: 35},
	"LAWN_GREEN":          {R: 124, G: 252, B: 0},
	"CHARTREUSE":          {R: 127, G: 255, B: 0},
	"GREEN_YELLOW":        {R: 173, G: 255, B: 47},
	"DARK_GREEN":          {R: 0, G: 100, B: 0},
	"GREEN":               {R: 0, G: 128, B: 0},
	"FOREST_GREEN":        {R: 34, G: 139, B: 34},
	"LIME":                {R: 0, G: 255, B: 0},
	"LIME_GREEN":          {R: 50, G: 205, B: 50},
	"LIGHT_GREEN":         {R: 144, G: 238, B: 144},
	"PALE_GREEN":          {R: 152, G: 251, B: 152},
	"DARK_SEA_GREEN":      {R: 143, G: 188, B: 143},
	"MEDIUM_SPRING_GREEN": {R: 0, G: 250, B: 154},
	"SPRING_GREEN":        {R: 0, G: 255, B: 127},
	"SEA_GREEN":           {R: 46, G: 139, B: 87},
	"MEDIUM_SEA_GREEN":    {R: 60, G: 179, B: 113},
	"MINT_CREAM":          {R: 245, G: 255, B: 250},
	"HONEYDEW":            {R: 240, G: 255, B: 240},

	// blues and teals
	"MEDIUM_AQUA_MARINE": {R: 102, G: 205, B: 170},
	"LIGHT_SEA_GREEN":    {R: 32, G: 178, B: 170},
	"DARK_SLATE_GRAY":    {R: 47, G: 79, B: 79},
	"TEAL":               {R: 0, G: 128, B: 128},
	"DARK_CYAN":          {R: 0, G: 139, B: 139},
	"AQUA":               {R: 0, G: 255, B: 255},
	"CYAN":               {R: 0, G: 255, B: 255},
	"LIGHT_CYAN":         {R: 224, G: 255, B: 255},
	"DARK_TURQUOISE":     {R: 0, G: 206, B: 209},
	"TURQUOISE":          {R: 64, G: 224, B: 208},
	"MEDIUM_TURQUOISE":   {R: 72, G: 209, B: 204},
	"PALE_TURQUOISE":     {R: 175, G: 238, B: 238},
	"AQUA_MARINE":        {R: 127, G: 255, B: 212},
	"POWDER_BLUE":        {R: 176, G: 224, B: 230},
	"CADET_BLUE":         {R: 95, G: 158, B: 160},
	"STEEL_BLUE":         {R: 70, G: 130, B: 180},
	"CORN_FLOWER_BLUE":   {R: 100, G: 149, B: 237},
	"DEEP_SKY_BLUE":      {R: 0, G: 191, B: 255},
	"DODGER_BLUE":        {R: 30, G: 144, B: 255},
	"LIGHT_BLUE":         {R: 173, G: 216, B: 230},
	"SKY_BLUE":           {R: 135, G: 206, B: 235},
	"LIGHT_SKY_BLUE":     {R: 135, G: 206, B: 250},
	"MIDNIGHT_BLUE":      {R: 25, G: 25, B: 112},
	"NAVY":               {R: 0, G: 0, B: 128},
	"DARK_BLUE":          {R: 0, G: 0, B: 139},
	"MEDIUM_BLUE":        {R: 0, G: 0, B: 205},
	"BLUE":               {R: 0, G: 0, B: 255},
	"ROYAL_BLUE":         {R: 65, G: 105, B: 225},
	"LIGHT_STEEL_BLUE":   {R: 176, G: 196, B: 222},
	"ALICE_BLUE":         {R: 240, G: 248, B: 255},
	"AZURE":              {R: 240, G: 255, B: 255},

	// purples
	"BLUE_VIOLET":       {R: 138, G: 43, B: 226},
	"INDIGO":            {R: 75, G: 0, B: 130},
	"DARK_SLATE_BLUE":   {R: 72, G: 61, B: 139},
	"SLATE_BLUE":        {R: 106, G: 90, B: 205},
	"MEDIUM_SLATE_BLUE": {R: 123, G: 104, B: 238},
	"MEDIUM_PURPLE":     {R: 147, G: 112, B: 219},
	"DARK_MAGENTA":      {R: 139, G: 0, B: 139},
	"DARK_VIOLET":       {R: 148, G: 0, B: 211},
	"DARK_ORCHID":       {R: 153, G: 50, B: 204},
	"MEDIUM_ORCHID":     {R: 186, G: 85, B: 211},
	"PURPLE":            {R: 128, G: 0, B: 128},
	"LAVENDER":          {R: 230, G: 230, B: 250},

	// pinks
	"THISTLE":           {R: 216, G: 191, B: 216},
	"PLUM":              {R: 221, G: 160, B: 221},
	"VIOLET":            {R: 238, G: 130, B: 238},
	"MAGENTA":           {R: 255, G: 0, B: 255},
	"FUCHSIA":           {R: 255, G: 0, B: 255},
	"ORCHID":            {R: 218, G: 112, B: 214},
	"MEDIUM_VIOLET_RED": {R: 199, G: 21, B: 133},
	"PALE_VIOLET_RED":   {R: 219, G: 112, B: 147},
	"DEEP_PINK":         {R: 255, G: 20, B: 147},
	"HOT_PINK":          {R: 255, G: 105, B: 180},
	"LIGHT_PINK":        {R: 255, G: 182, B: 193},
	"PINK":              {R: 255, G: 192, B: 203},

	// whites
	"ANTIQUE_WHITE":           {R: 250, G: 235, B: 215},
	"BEIGE":                   {R: 245, G: 245, B: 220},
	"BISQUE":                  {R: 255, G: 228, B: 196},
	"BLANCHED_ALMOND":         {R: 255, G: 235, B: 205},
	"WHEAT":                   {R: 245, G: 222, B: 179},
	"CORN_SILK":               {R: 255, G: 248, B: 220},
	"LEMON_CHIFFON":           {R: 255, G: 250, B: 205},
	"LIGHT_GOLDEN_ROD_YELLOW": {R: 250, G: 250, B: 210},
	"LIGHT_YELLOW":            {R: 255, G: 255, B: 224},
	"FLORAL_WHITE":            {R: 255, G: 250, B: 240},
	"GHOST_WHITE":             {R: 248, G: 248, B: 255},
	"IVORY":                   {R: 255, G: 255, B: 240},
	"SNOW":                    {R: 255, G: 250, B: 250},
	"WHITE":                   {R: 255, G: 255, B: 255},
	"WHITE_SMOKE":             {R: 245, G: 245, B: 245},

	// browns
	"SADDLE_BROWN":   {R: 139, G: 69, B: 19},
	"SIENNA":         {R: 160, G: 82, B: 45},
	"CHOCOLATE":      {R: 210, G: 105, B: 30},
	"PERU":           {R: 205, G: 133, B: 63},
	"SANDY_BROWN":    {R: 244, G: 164, B: 96},
	"BURLY_WOOD":     {R: 222, G: 184, B: 135},
	"TAN":            {R: 210, G: 180, B: 140},
	"ROSY_BROWN":     {R: 188, G: 143, B: 143},
	"MOCCASIN":       {R: 255, G: 228, B: 181},
	"NAVAJO_WHITE":   {R: 255, G: 222, B: 173},
	"PEACH_PUFF":     {R: 255, G: 218, B: 185},
	"MISTY_ROSE":     {R: 255, G: 228, B: 225},
	"LAVENDER_BLUSH": {R: 255, G: 240, B: 245},
	"LINEN":          {R: 250, G: 240, B: 230},
	"OLD_LACE":       {R: 253, G: 245, B: 230},
	"PAPAYA_WHIP":    {R: 255, G: 239, B: 213},
	"SEA_SHELL":      {R: 255, G: 245, B: 238},

	// grays
	"SLATE_GRAY":       {R: 112, G: 128, B: 144},
	"LIGHT_SLATE_GRAY": {R: 119, G: 136, B: 153},
	"GAINSBORO":        {R: 220, G: 220, B: 220},
	"LIGHT_GRAY":       {R: 211, G: 211, B: 211},
	"SILVER":           {R: 192, G: 192, B: 192},
	"DARK_GRAY":        {R: 169, G: 169, B: 169},
	"GRAY":             {R: 128, G: 128, B: 128},
	"DIM_GRAY":         {R: 105, G: 105, B: 105},
	"BLACK":            {R: 0, G: 0, B: 0},
}

// FGColors holds the predefined foreground colors.
var FGColors = mustPalette(Foreground, presetColors)

// BGColors holds the predefined background colors.
var BGColors = mustPalette(Background, presetColors)
