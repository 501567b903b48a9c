// Command sortd organizes files into category folders by extension, with
// content-hash duplicate detection and a persisted extension catalog.
package main
